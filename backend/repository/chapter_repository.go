package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtside/backend/models"
)

// ChapterPosition is one entry of a reorder request.
type ChapterPosition struct {
	ID       string `json:"id" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

type ChapterRepository interface {
	Create(ctx context.Context, chapter *models.Chapter) error
	Find(ctx context.Context, courseID, chapterID string) (*models.Chapter, error)
	Save(ctx context.Context, chapter *models.Chapter) error
	Delete(ctx context.Context, chapterID string) error
	// NextPosition is one past the highest position in the course.
	NextPosition(ctx context.Context, courseID string) (int, error)
	Reorder(ctx context.Context, courseID string, positions []ChapterPosition) error
	ListPublished(ctx context.Context, courseID string) ([]models.Chapter, error)
	// NextPublished is the published chapter following position, or nil.
	NextPublished(ctx context.Context, courseID string, position int) (*models.Chapter, error)

	UpsertVideo(ctx context.Context, video *models.Video) error
	FindVideo(ctx context.Context, chapterID string) (*models.Video, error)
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	return wrap("create chapter", r.db.WithContext(ctx).Create(chapter).Error)
}

func (r *chapterRepository) Find(ctx context.Context, courseID, chapterID string) (*models.Chapter, error) {
	var chapter models.Chapter
	err := r.db.WithContext(ctx).
		Where("id = ? AND course_id = ?", chapterID, courseID).
		First(&chapter).Error
	if err != nil {
		return nil, wrap("find chapter", err)
	}
	return &chapter, nil
}

func (r *chapterRepository) Save(ctx context.Context, chapter *models.Chapter) error {
	return wrap("save chapter", r.db.WithContext(ctx).Omit(clause.Associations).Save(chapter).Error)
}

func (r *chapterRepository) Delete(ctx context.Context, chapterID string) error {
	return wrap("delete chapter", r.db.WithContext(ctx).Delete(&models.Chapter{}, "id = ?", chapterID).Error)
}

func (r *chapterRepository) NextPosition(ctx context.Context, courseID string) (int, error) {
	var last *int
	err := r.db.WithContext(ctx).
		Model(&models.Chapter{}).
		Select("MAX(position)").
		Where("course_id = ?", courseID).
		Scan(&last).Error
	if err != nil {
		return 0, wrap("next chapter position", err)
	}
	if last == nil {
		return 1, nil
	}
	return *last + 1, nil
}

func (r *chapterRepository) Reorder(ctx context.Context, courseID string, positions []ChapterPosition) error {
	return wrap("reorder chapters", r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range positions {
			res := tx.Model(&models.Chapter{}).
				Where("id = ? AND course_id = ?", p.ID, courseID).
				Update("position", p.Position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	}))
}

func (r *chapterRepository) ListPublished(ctx context.Context, courseID string) ([]models.Chapter, error) {
	var chapters []models.Chapter
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Order("position ASC").
		Find(&chapters).Error
	return chapters, wrap("list published chapters", err)
}

func (r *chapterRepository) NextPublished(ctx context.Context, courseID string, position int) (*models.Chapter, error) {
	var chapters []models.Chapter
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND is_published = ? AND position > ?", courseID, true, position).
		Order("position ASC").
		Limit(1).
		Find(&chapters).Error
	if err != nil {
		return nil, wrap("next published chapter", err)
	}
	if len(chapters) == 0 {
		return nil, nil
	}
	return &chapters[0], nil
}

func (r *chapterRepository) UpsertVideo(ctx context.Context, video *models.Video) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chapter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"filename", "mime_type", "data", "updated_at"}),
		}).
		Create(video).Error
	return wrap("upsert video", err)
}

func (r *chapterRepository) FindVideo(ctx context.Context, chapterID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("chapter_id = ?", chapterID).First(&video).Error; err != nil {
		return nil, wrap("find video", err)
	}
	return &video, nil
}
