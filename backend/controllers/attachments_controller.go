package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type AttachmentsController struct {
	Courses services.CourseService
}

func NewAttachmentsController(courses services.CourseService) *AttachmentsController {
	return &AttachmentsController{Courses: courses}
}

func (ac *AttachmentsController) Upload(c *fiber.Ctx) error {
	file, err := formFile(c, "file")
	if err != nil {
		return utils.BadRequest(c, "No file uploaded")
	}

	attachment, err := ac.Courses.AddAttachment(c.UserContext(), middleware.UserID(c), c.Params("courseId"), file)
	if err != nil {
		return respondError(c, err, "Failed to upload attachment")
	}
	return c.JSON(attachment)
}

func (ac *AttachmentsController) List(c *fiber.Ctx) error {
	attachments, err := ac.Courses.Attachments(c.UserContext(), middleware.UserID(c), c.Params("courseId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch attachments")
	}
	return c.JSON(attachments)
}

func (ac *AttachmentsController) Download(c *fiber.Ctx) error {
	attachment, err := ac.Courses.Attachment(c.UserContext(), c.Params("courseId"), c.Params("attachmentId"))
	if err != nil {
		return respondError(c, err, "Failed to download attachment")
	}

	c.Set(fiber.HeaderContentType, attachment.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", attachment.Name))
	return c.Send(attachment.Data)
}

func (ac *AttachmentsController) Delete(c *fiber.Ctx) error {
	err := ac.Courses.DeleteAttachment(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("attachmentId"))
	if err != nil {
		return respondError(c, err, "Failed to delete attachment")
	}
	return c.JSON(fiber.Map{"success": true})
}
