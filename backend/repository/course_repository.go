package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtside/backend/models"
)

// CourseRepository stores courses, their categories and attachments.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id string) (*models.Course, error)
	// FindOwned loads a course of ownerID with chapters by position and attachments.
	FindOwned(ctx context.Context, id, ownerID string) (*models.Course, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Course, error)
	Save(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error

	// FetchCoursesWithProgress returns every course of teacherID with all
	// chapters and every progress record, published or not.
	FetchCoursesWithProgress(ctx context.Context, teacherID string) ([]models.Course, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	// SeedCategories inserts missing names and reports how many were added.
	SeedCategories(ctx context.Context, names []string) (int64, error)

	CreateAttachment(ctx context.Context, a *models.Attachment) error
	ListAttachments(ctx context.Context, courseID string) ([]models.Attachment, error)
	FindAttachment(ctx context.Context, courseID, id string) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, id string) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return wrap("create course", r.db.WithContext(ctx).Create(course).Error)
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, wrap("find course", err)
	}
	return &course, nil
}

func (r *courseRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "course_id", "name", "mime_type", "created_at", "updated_at").Order("created_at DESC")
		}).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&course).Error
	if err != nil {
		return nil, wrap("find owned course", err)
	}
	return &course, nil
}

func (r *courseRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, wrap("list courses", err)
}

func (r *courseRepository) Save(ctx context.Context, course *models.Course) error {
	return wrap("save course", r.db.WithContext(ctx).Omit(clause.Associations).Save(course).Error)
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete course", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *courseRepository) FetchCoursesWithProgress(ctx context.Context, teacherID string) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Preload("Chapters").
		Preload("Chapters.UserProgress").
		Where("user_id = ?", teacherID).
		Order("created_at ASC").
		Find(&courses).Error
	return courses, wrap("fetch courses with progress", err)
}

func (r *courseRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, wrap("list categories", err)
}

func (r *courseRepository) SeedCategories(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	categories := make([]models.Category, 0, len(names))
	for _, n := range names {
		categories = append(categories, models.Category{Name: n})
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&categories)
	return res.RowsAffected, wrap("seed categories", res.Error)
}

func (r *courseRepository) CreateAttachment(ctx context.Context, a *models.Attachment) error {
	return wrap("create attachment", r.db.WithContext(ctx).Create(a).Error)
}

func (r *courseRepository) ListAttachments(ctx context.Context, courseID string) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.WithContext(ctx).
		Select("id", "course_id", "name", "mime_type", "created_at", "updated_at").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&attachments).Error
	return attachments, wrap("list attachments", err)
}

func (r *courseRepository) FindAttachment(ctx context.Context, courseID, id string) (*models.Attachment, error) {
	var a models.Attachment
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}
	if err := q.First(&a).Error; err != nil {
		return nil, wrap("find attachment", err)
	}
	return &a, nil
}

func (r *courseRepository) DeleteAttachment(ctx context.Context, id string) error {
	return wrap("delete attachment", r.db.WithContext(ctx).Delete(&models.Attachment{}, "id = ?", id).Error)
}
