package services

import (
	"context"
	"log"
	"strings"
	"time"

	"courtside/backend/models"
	"courtside/backend/repository"
	"courtside/backend/validation"
)

type CreateEventInput struct {
	Title  string `json:"title" validate:"required,max=200"`
	Start  string `json:"start" validate:"required"`
	End    string `json:"end" validate:"required"`
	AllDay bool   `json:"allDay"`
}

type EventService interface {
	List(ctx context.Context, userID string) ([]models.Event, error)
	Create(ctx context.Context, userID string, in CreateEventInput) (*models.Event, error)
	Delete(ctx context.Context, userID, eventID string) error
}

type eventService struct {
	events repository.EventRepository
	logger *log.Logger
}

func NewEventService(events repository.EventRepository, logger *log.Logger) EventService {
	return &eventService{events: events, logger: logger}
}

func (s *eventService) List(ctx context.Context, userID string) ([]models.Event, error) {
	events, err := s.events.List(ctx, userID)
	if err != nil {
		s.logger.Printf("[EVENTS] list: %v", err)
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *eventService) Create(ctx context.Context, userID string, in CreateEventInput) (*models.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	fields := validation.Struct(in)
	if fields == nil {
		fields = map[string]string{}
	}

	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil && in.Start != "" {
		fields["start"] = "start must be an RFC 3339 timestamp"
	}
	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil && in.End != "" {
		fields["end"] = "end must be an RFC 3339 timestamp"
	}
	if len(fields) == 0 && end.Before(start) {
		fields["end"] = "end must not be before start"
	}
	if err := invalidFields(fields); err != nil {
		return nil, err
	}

	event := &models.Event{UserID: userID, Title: in.Title, Start: start, End: end, AllDay: in.AllDay}
	if err := s.events.Create(ctx, event); err != nil {
		s.logger.Printf("[EVENTS] create: %v", err)
		return nil, err
	}
	s.logger.Printf("[EVENTS] created %s for %s", event.ID, userID)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, userID, eventID string) error {
	if err := s.events.Delete(ctx, userID, eventID); err != nil {
		if err = notFound(err); err != ErrNotFound {
			s.logger.Printf("[EVENTS] delete %s: %v", eventID, err)
		}
		return err
	}
	return nil
}
