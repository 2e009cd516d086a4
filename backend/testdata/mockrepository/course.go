package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside/backend/models"
	"courtside/backend/repository"
)

type CourseRepository struct {
	mock.Mock
}

var _ repository.CourseRepository = &CourseRepository{}

func (m *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Course)
	return c, args.Error(1)
}

func (m *CourseRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Course, error) {
	args := m.Called(ctx, id, ownerID)
	c, _ := args.Get(0).(*models.Course)
	return c, args.Error(1)
}

func (m *CourseRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Course, error) {
	args := m.Called(ctx, ownerID)
	c, _ := args.Get(0).([]models.Course)
	return c, args.Error(1)
}

func (m *CourseRepository) Save(ctx context.Context, course *models.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *CourseRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CourseRepository) FetchCoursesWithProgress(ctx context.Context, teacherID string) ([]models.Course, error) {
	args := m.Called(ctx, teacherID)
	c, _ := args.Get(0).([]models.Course)
	return c, args.Error(1)
}

func (m *CourseRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]models.Category)
	return c, args.Error(1)
}

func (m *CourseRepository) SeedCategories(ctx context.Context, names []string) (int64, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CourseRepository) CreateAttachment(ctx context.Context, a *models.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *CourseRepository) ListAttachments(ctx context.Context, courseID string) ([]models.Attachment, error) {
	args := m.Called(ctx, courseID)
	a, _ := args.Get(0).([]models.Attachment)
	return a, args.Error(1)
}

func (m *CourseRepository) FindAttachment(ctx context.Context, courseID, id string) (*models.Attachment, error) {
	args := m.Called(ctx, courseID, id)
	a, _ := args.Get(0).(*models.Attachment)
	return a, args.Error(1)
}

func (m *CourseRepository) DeleteAttachment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
