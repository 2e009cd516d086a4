package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside/backend/models"
	"courtside/backend/repository"
)

type ChapterRepository struct {
	mock.Mock
}

var _ repository.ChapterRepository = &ChapterRepository{}

func (m *ChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	return m.Called(ctx, chapter).Error(0)
}

func (m *ChapterRepository) Find(ctx context.Context, courseID, chapterID string) (*models.Chapter, error) {
	args := m.Called(ctx, courseID, chapterID)
	c, _ := args.Get(0).(*models.Chapter)
	return c, args.Error(1)
}

func (m *ChapterRepository) Save(ctx context.Context, chapter *models.Chapter) error {
	return m.Called(ctx, chapter).Error(0)
}

func (m *ChapterRepository) Delete(ctx context.Context, chapterID string) error {
	return m.Called(ctx, chapterID).Error(0)
}

func (m *ChapterRepository) NextPosition(ctx context.Context, courseID string) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *ChapterRepository) Reorder(ctx context.Context, courseID string, positions []repository.ChapterPosition) error {
	return m.Called(ctx, courseID, positions).Error(0)
}

func (m *ChapterRepository) ListPublished(ctx context.Context, courseID string) ([]models.Chapter, error) {
	args := m.Called(ctx, courseID)
	c, _ := args.Get(0).([]models.Chapter)
	return c, args.Error(1)
}

func (m *ChapterRepository) NextPublished(ctx context.Context, courseID string, position int) (*models.Chapter, error) {
	args := m.Called(ctx, courseID, position)
	c, _ := args.Get(0).(*models.Chapter)
	return c, args.Error(1)
}

func (m *ChapterRepository) UpsertVideo(ctx context.Context, video *models.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *ChapterRepository) FindVideo(ctx context.Context, chapterID string) (*models.Video, error) {
	args := m.Called(ctx, chapterID)
	v, _ := args.Get(0).(*models.Video)
	return v, args.Error(1)
}
