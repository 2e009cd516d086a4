package routes

import (
	"log"

	"gorm.io/gorm"

	"courtside/backend/analytics"
	"courtside/backend/config"
	"courtside/backend/llm"
	"courtside/backend/repository"
	"courtside/backend/services"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Auth      services.AuthService
	Courses   services.CourseService
	Chapters  services.ChapterService
	Progress  services.ProgressService
	Analytics services.AnalyticsService
	Assistant services.AssistantService
	Events    services.EventService
}

// Repositories are the storage collaborators of Services.
type Repositories struct {
	Users    repository.UserRepository
	Courses  repository.CourseRepository
	Chapters repository.ChapterRepository
	Progress repository.ProgressRepository
	Chats    repository.ChatRepository
	Events   repository.EventRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    repository.NewUserRepository(db),
		Courses:  repository.NewCourseRepository(db),
		Chapters: repository.NewChapterRepository(db),
		Progress: repository.NewProgressRepository(db),
		Chats:    repository.NewChatRepository(db),
		Events:   repository.NewEventRepository(db),
	}
}

func NewServices(repos Repositories, generator llm.Generator, cfg *config.Config, logger *log.Logger) Services {
	return Services{
		Auth:      services.NewAuthService(repos.Users, cfg),
		Courses:   services.NewCourseService(repos.Courses, logger),
		Chapters:  services.NewChapterService(repos.Courses, repos.Chapters, logger),
		Progress:  services.NewProgressService(repos.Courses, repos.Chapters, repos.Progress, logger),
		Analytics: services.NewAnalyticsService(repos.Courses, analytics.ParseGroupBy(cfg.AnalyticsGroupBy), logger),
		Assistant: services.NewAssistantService(repos.Chats, generator, logger),
		Events:    services.NewEventService(repos.Events, logger),
	}
}

// NewGenerator builds the Gemini client from cfg.
func NewGenerator(cfg *config.Config) llm.Generator {
	return llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.GeminiTimeout)
}
