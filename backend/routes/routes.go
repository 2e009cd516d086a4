package routes

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/config"
	"courtside/backend/controllers"
	"courtside/backend/middleware"
)

func SetupRoutes(app *fiber.App, svc Services, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(svc.Auth, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/check-role", authController.CheckRole)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	teacherMiddleware := middleware.TeacherMiddleware()

	api := app.Group("/api", authMiddleware)

	coursesController := controllers.NewCoursesController(svc.Courses)
	attachmentsController := controllers.NewAttachmentsController(svc.Courses)
	chaptersController := controllers.NewChaptersController(svc.Chapters)
	progressController := controllers.NewProgressController(svc.Progress)
	analyticsController := controllers.NewAnalyticsController(svc.Analytics)

	api.Get("/categories", coursesController.GetCategories)

	// Teacher dashboard
	teacher := api.Group("/teacher", teacherMiddleware)
	teacher.Get("/courses", coursesController.GetTeacherCourses)
	teacher.Get("/analytics", analyticsController.GetAnalytics)

	// Learning routes, open to every signed in user
	courses := api.Group("/courses")
	courses.Get("/:courseId/image", coursesController.GetImage)
	courses.Get("/:courseId/progress", progressController.GetCourseProgress)
	courses.Get("/:courseId/attachments/:attachmentId", attachmentsController.Download)
	courses.Get("/:courseId/chapters/:chapterId", progressController.GetChapter)
	courses.Put("/:courseId/chapters/:chapterId/progress", progressController.UpdateProgress)
	courses.Get("/:courseId/chapters/:chapterId/video", chaptersController.GetVideo)

	// Course authoring
	courses.Post("/", teacherMiddleware, coursesController.CreateCourse)
	courses.Get("/:courseId", teacherMiddleware, coursesController.GetCourse)
	courses.Patch("/:courseId", teacherMiddleware, coursesController.UpdateCourse)
	courses.Delete("/:courseId", teacherMiddleware, coursesController.DeleteCourse)
	courses.Patch("/:courseId/publish", teacherMiddleware, coursesController.PublishCourse)
	courses.Patch("/:courseId/unpublish", teacherMiddleware, coursesController.UnpublishCourse)
	courses.Post("/:courseId/image", teacherMiddleware, coursesController.UploadImage)

	courses.Post("/:courseId/attachments", teacherMiddleware, attachmentsController.Upload)
	courses.Get("/:courseId/attachments", teacherMiddleware, attachmentsController.List)
	courses.Delete("/:courseId/attachments/:attachmentId", teacherMiddleware, attachmentsController.Delete)

	courses.Post("/:courseId/chapters", teacherMiddleware, chaptersController.CreateChapter)
	courses.Put("/:courseId/chapters/reorder", teacherMiddleware, chaptersController.ReorderChapters)
	courses.Patch("/:courseId/chapters/:chapterId", teacherMiddleware, chaptersController.UpdateChapter)
	courses.Delete("/:courseId/chapters/:chapterId", teacherMiddleware, chaptersController.DeleteChapter)
	courses.Patch("/:courseId/chapters/:chapterId/publish", teacherMiddleware, chaptersController.PublishChapter)
	courses.Patch("/:courseId/chapters/:chapterId/unpublish", teacherMiddleware, chaptersController.UnpublishChapter)
	courses.Post("/:courseId/chapters/:chapterId/video", teacherMiddleware, chaptersController.UploadVideo)

	// Assistant routes
	assistantController := controllers.NewAssistantController(svc.Assistant)
	api.Post("/ai", assistantController.Ask)
	api.Get("/ai", assistantController.GetMessages)
	api.Get("/chat", assistantController.ListChats)
	api.Post("/chat", assistantController.Chat)
	api.Get("/chat/conversations", assistantController.Conversations)
	api.Delete("/chat/:chatId", assistantController.DeleteChat)

	// Calendar routes
	eventsController := controllers.NewEventsController(svc.Events)
	api.Get("/events", eventsController.GetEvents)
	api.Post("/events", eventsController.CreateEvent)
	api.Delete("/events/:id", eventsController.DeleteEvent)
}
