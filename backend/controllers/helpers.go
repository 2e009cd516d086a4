package controllers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"courtside/backend/services"
	"courtside/backend/utils"
)

// respondError maps service errors onto the standard error responses.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		if len(verr.Fields) > 0 {
			return utils.ValidationError(c, verr.Message, verr.Fields)
		}
		return utils.BadRequest(c, verr.Message)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, "Not found")
	case errors.Is(err, services.ErrForbidden):
		return utils.Forbidden(c, "Forbidden")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrUsernameTaken):
		return utils.Error(c, fiber.StatusConflict, err)
	default:
		return utils.InternalServerError(c, fallback)
	}
}

// formFile reads a multipart file field into memory.
func formFile(c *fiber.Ctx, field string) (services.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return services.Upload{}, err
	}

	f, err := header.Open()
	if err != nil {
		return services.Upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return services.Upload{}, err
	}

	return services.Upload{
		Name:     header.Filename,
		MimeType: header.Header.Get(fiber.HeaderContentType),
		Data:     data,
	}, nil
}
