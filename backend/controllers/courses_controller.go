package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type CoursesController struct {
	Courses services.CourseService
}

func NewCoursesController(courses services.CourseService) *CoursesController {
	return &CoursesController{Courses: courses}
}

// [+] CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body services.CreateCourseInput true "Course title"
// @Success 200 {object} models.Course
// @Failure 422 {object} utils.ErrorResponse
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input services.CreateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Courses.Create(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return respondError(c, err, "Failed to create course")
	}
	return c.JSON(course)
}

func (cc *CoursesController) GetTeacherCourses(c *fiber.Ctx) error {
	courses, err := cc.Courses.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch courses")
	}
	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.Courses.Get(c.UserContext(), middleware.UserID(c), c.Params("courseId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch course")
	}
	return c.JSON(course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var input services.UpdateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Courses.Update(c.UserContext(), middleware.UserID(c), c.Params("courseId"), input)
	if err != nil {
		return respondError(c, err, "Failed to update course")
	}
	return c.JSON(course)
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	if err := cc.Courses.Delete(c.UserContext(), middleware.UserID(c), c.Params("courseId")); err != nil {
		return respondError(c, err, "Failed to delete course")
	}
	return utils.NoContent(c)
}

func (cc *CoursesController) PublishCourse(c *fiber.Ctx) error {
	course, err := cc.Courses.Publish(c.UserContext(), middleware.UserID(c), c.Params("courseId"))
	if err != nil {
		return respondError(c, err, "Failed to publish course")
	}
	return c.JSON(course)
}

func (cc *CoursesController) UnpublishCourse(c *fiber.Ctx) error {
	course, err := cc.Courses.Unpublish(c.UserContext(), middleware.UserID(c), c.Params("courseId"))
	if err != nil {
		return respondError(c, err, "Failed to unpublish course")
	}
	return c.JSON(course)
}

func (cc *CoursesController) GetCategories(c *fiber.Ctx) error {
	categories, err := cc.Courses.Categories(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch categories")
	}
	return c.JSON(categories)
}

func (cc *CoursesController) UploadImage(c *fiber.Ctx) error {
	file, err := formFile(c, "file")
	if err != nil {
		return utils.BadRequest(c, "No file uploaded")
	}

	course, err := cc.Courses.SetImage(c.UserContext(), middleware.UserID(c), c.Params("courseId"), file)
	if err != nil {
		return respondError(c, err, "Failed to upload image")
	}
	return c.JSON(fiber.Map{"imageUrl": course.ImageURL})
}

func (cc *CoursesController) GetImage(c *fiber.Ctx) error {
	mimeType, data, err := cc.Courses.Image(c.UserContext(), c.Params("courseId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch image")
	}

	c.Set(fiber.HeaderContentType, mimeType)
	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	return c.Send(data)
}
