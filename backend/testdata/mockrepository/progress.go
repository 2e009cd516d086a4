package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside/backend/models"
	"courtside/backend/repository"
)

type ProgressRepository struct {
	mock.Mock
}

var _ repository.ProgressRepository = &ProgressRepository{}

func (m *ProgressRepository) Find(ctx context.Context, userID, chapterID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID, chapterID)
	p, _ := args.Get(0).(*models.UserProgress)
	return p, args.Error(1)
}

func (m *ProgressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	return m.Called(ctx, progress).Error(0)
}

func (m *ProgressRepository) CountCompleted(ctx context.Context, userID string, chapterIDs []string) (int64, error) {
	args := m.Called(ctx, userID, chapterIDs)
	return args.Get(0).(int64), args.Error(1)
}
