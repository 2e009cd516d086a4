package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtside/backend/models"
)

type ProgressRepository interface {
	// Find returns the user's progress on a chapter, or nil when there is none.
	Find(ctx context.Context, userID, chapterID string) (*models.UserProgress, error)
	// Upsert creates or updates the (user, chapter) record.
	Upsert(ctx context.Context, progress *models.UserProgress) error
	CountCompleted(ctx context.Context, userID string, chapterIDs []string) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Find(ctx context.Context, userID, chapterID string) (*models.UserProgress, error) {
	var rows []models.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND chapter_id = ?", userID, chapterID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, wrap("find progress", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *progressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_completed", "updated_at"}),
		}).
		Create(progress).Error
	return wrap("upsert progress", err)
}

func (r *progressRepository) CountCompleted(ctx context.Context, userID string, chapterIDs []string) (int64, error) {
	if len(chapterIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.UserProgress{}).
		Where("user_id = ? AND chapter_id IN ? AND is_completed = ?", userID, chapterIDs, true).
		Count(&n).Error
	return n, wrap("count completed chapters", err)
}
