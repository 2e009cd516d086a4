package repository

import (
	"context"

	"gorm.io/gorm"

	"courtside/backend/models"
)

type EventRepository interface {
	List(ctx context.Context, userID string) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	// Delete removes the user's event and returns ErrNotFound when none matched.
	Delete(ctx context.Context, userID, id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, userID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start ASC").Find(&events).Error
	return events, wrap("list events", err)
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return wrap("create event", r.db.WithContext(ctx).Create(event).Error)
}

func (r *eventRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Event{})
	if res.Error != nil {
		return wrap("delete event", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
