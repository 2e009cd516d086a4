package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type ProgressController struct {
	Progress services.ProgressService
}

func NewProgressController(progress services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

// GetChapter returns the player view of a published chapter.
func (pc *ProgressController) GetChapter(c *fiber.Ctx) error {
	view, err := pc.Progress.ChapterView(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch chapter")
	}
	return c.JSON(view)
}

func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	var input struct {
		IsCompleted bool `json:"isCompleted"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	res, err := pc.Progress.UpdateProgress(c.UserContext(), middleware.UserID(c), c.Params("courseId"), c.Params("chapterId"), input.IsCompleted)
	if err != nil {
		return respondError(c, err, "Failed to update progress")
	}
	return c.JSON(res)
}

func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	pct, err := pc.Progress.CourseProgress(c.UserContext(), middleware.UserID(c), c.Params("courseId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch progress")
	}
	return c.JSON(fiber.Map{"progress": pct})
}
