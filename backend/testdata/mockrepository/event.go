package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside/backend/models"
	"courtside/backend/repository"
)

type EventRepository struct {
	mock.Mock
}

var _ repository.EventRepository = &EventRepository{}

func (m *EventRepository) List(ctx context.Context, userID string) ([]models.Event, error) {
	args := m.Called(ctx, userID)
	e, _ := args.Get(0).([]models.Event)
	return e, args.Error(1)
}

func (m *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}
