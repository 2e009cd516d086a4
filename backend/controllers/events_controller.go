package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type EventsController struct {
	Events services.EventService
}

func NewEventsController(events services.EventService) *EventsController {
	return &EventsController{Events: events}
}

func (ec *EventsController) GetEvents(c *fiber.Ctx) error {
	events, err := ec.Events.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return eventError(c, "Failed to fetch events", err)
	}
	return c.JSON(events)
}

func (ec *EventsController) CreateEvent(c *fiber.Ctx) error {
	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	event, err := ec.Events.Create(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return eventError(c, "Failed to create event", err)
	}
	return utils.Created(c, event)
}

func (ec *EventsController) DeleteEvent(c *fiber.Ctx) error {
	if err := ec.Events.Delete(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return eventError(c, "Failed to delete event", err)
	}
	return utils.NoContent(c)
}

// eventError keeps the driver message in details for the calendar UI.
func eventError(c *fiber.Ctx, message string, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) || errors.Is(err, services.ErrNotFound) {
		return respondError(c, err, message)
	}
	return utils.Error(c, fiber.StatusInternalServerError, errors.New(message), err.Error())
}
