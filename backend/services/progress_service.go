package services

import (
	"context"
	"log"

	"courtside/backend/models"
	"courtside/backend/repository"
)

// ChapterView is everything the player page needs for one chapter.
type ChapterView struct {
	Chapter      *models.Chapter      `json:"chapter"`
	Course       *models.Course       `json:"course"`
	Attachments  []models.Attachment  `json:"attachments"`
	NextChapter  *models.Chapter      `json:"nextChapter"`
	UserProgress *models.UserProgress `json:"userProgress"`
	IsLocked     bool                 `json:"isLocked"`
}

type ProgressUpdate struct {
	UserProgress *models.UserProgress `json:"userProgress"`
	Progress     float64              `json:"progress"`
}

type ProgressService interface {
	ChapterView(ctx context.Context, userID, courseID, chapterID string) (*ChapterView, error)
	UpdateProgress(ctx context.Context, userID, courseID, chapterID string, completed bool) (*ProgressUpdate, error)
	// CourseProgress is the percentage of published chapters the user completed.
	CourseProgress(ctx context.Context, userID, courseID string) (float64, error)
}

type progressService struct {
	courses  repository.CourseRepository
	chapters repository.ChapterRepository
	progress repository.ProgressRepository
	logger   *log.Logger
}

func NewProgressService(
	courses repository.CourseRepository,
	chapters repository.ChapterRepository,
	progress repository.ProgressRepository,
	logger *log.Logger,
) ProgressService {
	return &progressService{courses: courses, chapters: chapters, progress: progress, logger: logger}
}

func (s *progressService) ChapterView(ctx context.Context, userID, courseID, chapterID string) (*ChapterView, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, notFound(err)
	}
	if !course.IsPublished {
		return nil, ErrNotFound
	}

	chapter, err := s.chapters.Find(ctx, courseID, chapterID)
	if err != nil {
		return nil, notFound(err)
	}
	if !chapter.IsPublished {
		return nil, ErrNotFound
	}

	view := &ChapterView{
		Chapter:     chapter,
		Course:      course,
		Attachments: []models.Attachment{},
		IsLocked:    !chapter.IsFree,
	}

	if chapter.IsFree {
		attachments, err := s.courses.ListAttachments(ctx, courseID)
		if err != nil {
			s.logger.Printf("[GET_CHAPTER] attachments %s: %v", courseID, err)
			return nil, err
		}
		if attachments != nil {
			view.Attachments = attachments
		}
	}

	if view.NextChapter, err = s.chapters.NextPublished(ctx, courseID, chapter.Position); err != nil {
		s.logger.Printf("[GET_CHAPTER] next chapter %s: %v", chapterID, err)
		return nil, err
	}
	if view.UserProgress, err = s.progress.Find(ctx, userID, chapterID); err != nil {
		s.logger.Printf("[GET_CHAPTER] progress %s: %v", chapterID, err)
		return nil, err
	}
	return view, nil
}

func (s *progressService) UpdateProgress(ctx context.Context, userID, courseID, chapterID string, completed bool) (*ProgressUpdate, error) {
	if _, err := s.chapters.Find(ctx, courseID, chapterID); err != nil {
		return nil, notFound(err)
	}

	record := &models.UserProgress{UserID: userID, ChapterID: chapterID, IsCompleted: completed}
	if err := s.progress.Upsert(ctx, record); err != nil {
		s.logger.Printf("[CHAPTER_ID_PROGRESS] %s: %v", chapterID, err)
		return nil, err
	}

	// ON CONFLICT keeps the original row, so read back what is stored.
	stored, err := s.progress.Find(ctx, userID, chapterID)
	if err != nil {
		s.logger.Printf("[CHAPTER_ID_PROGRESS] %s: %v", chapterID, err)
		return nil, err
	}
	if stored == nil {
		stored = record
	}

	pct, err := s.CourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return &ProgressUpdate{UserProgress: stored, Progress: pct}, nil
}

func (s *progressService) CourseProgress(ctx context.Context, userID, courseID string) (float64, error) {
	published, err := s.chapters.ListPublished(ctx, courseID)
	if err != nil {
		s.logger.Printf("[GET_PROGRESS] %s: %v", courseID, err)
		return 0, err
	}
	if len(published) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(published))
	for _, ch := range published {
		ids = append(ids, ch.ID)
	}
	completed, err := s.progress.CountCompleted(ctx, userID, ids)
	if err != nil {
		s.logger.Printf("[GET_PROGRESS] %s: %v", courseID, err)
		return 0, err
	}
	return float64(completed) / float64(len(published)) * 100, nil
}
