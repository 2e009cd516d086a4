package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type ChaptersController struct {
	Chapters services.ChapterService
}

func NewChaptersController(chapters services.ChapterService) *ChaptersController {
	return &ChaptersController{Chapters: chapters}
}

func (cc *ChaptersController) CreateChapter(c *fiber.Ctx) error {
	var input services.CreateChapterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	chapter, err := cc.Chapters.Create(c.UserContext(), middleware.UserID(c), c.Params("courseId"), input)
	if err != nil {
		return respondError(c, err, "Failed to create chapter")
	}
	return c.JSON(chapter)
}

func (cc *ChaptersController) UpdateChapter(c *fiber.Ctx) error {
	var input services.UpdateChapterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	chapter, err := cc.Chapters.Update(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId"), input)
	if err != nil {
		return respondError(c, err, "Failed to update chapter")
	}
	return c.JSON(chapter)
}

func (cc *ChaptersController) ReorderChapters(c *fiber.Ctx) error {
	var input services.ReorderInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := cc.Chapters.Reorder(c.UserContext(), middleware.UserID(c), c.Params("courseId"), input); err != nil {
		return respondError(c, err, "Failed to reorder chapters")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (cc *ChaptersController) PublishChapter(c *fiber.Ctx) error {
	chapter, err := cc.Chapters.Publish(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId"))
	if err != nil {
		return respondError(c, err, "Failed to publish chapter")
	}
	return c.JSON(chapter)
}

func (cc *ChaptersController) UnpublishChapter(c *fiber.Ctx) error {
	chapter, err := cc.Chapters.Unpublish(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId"))
	if err != nil {
		return respondError(c, err, "Failed to unpublish chapter")
	}
	return c.JSON(chapter)
}

func (cc *ChaptersController) DeleteChapter(c *fiber.Ctx) error {
	if err := cc.Chapters.Delete(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId")); err != nil {
		return respondError(c, err, "Failed to delete chapter")
	}
	return utils.NoContent(c)
}

func (cc *ChaptersController) UploadVideo(c *fiber.Ctx) error {
	file, err := formFile(c, "videoFile")
	if err != nil {
		return utils.BadRequest(c, "No video file uploaded")
	}

	err = cc.Chapters.UploadVideo(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId"), file)
	if err != nil {
		return respondError(c, err, "Failed to upload video")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (cc *ChaptersController) GetVideo(c *fiber.Ctx) error {
	video, err := cc.Chapters.Video(c.UserContext(), c.Params("courseId"), c.Params("chapterId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch video")
	}

	c.Set(fiber.HeaderContentType, video.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", video.Filename))
	return c.Send(video.Data)
}
