package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"courtside/backend/models"
	"courtside/backend/repository"
	"courtside/backend/validation"
)

var whitespace = regexp.MustCompile(`\s+`)

type CreateChapterInput struct {
	Title string `json:"title" validate:"required,max=200"`
}

type UpdateChapterInput struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	IsFree      *bool   `json:"isFree"`
}

type ReorderInput struct {
	List []repository.ChapterPosition `json:"list" validate:"required,min=1,dive"`
}

type ChapterService interface {
	Create(ctx context.Context, ownerID, courseID string, in CreateChapterInput) (*models.Chapter, error)
	Update(ctx context.Context, ownerID, courseID, chapterID string, in UpdateChapterInput) (*models.Chapter, error)
	Reorder(ctx context.Context, ownerID, courseID string, in ReorderInput) error
	Publish(ctx context.Context, ownerID, courseID, chapterID string) (*models.Chapter, error)
	Unpublish(ctx context.Context, ownerID, courseID, chapterID string) (*models.Chapter, error)
	Delete(ctx context.Context, ownerID, courseID, chapterID string) error

	UploadVideo(ctx context.Context, ownerID, courseID, chapterID string, file Upload) error
	Video(ctx context.Context, courseID, chapterID string) (*models.Video, error)
}

type chapterService struct {
	courses  repository.CourseRepository
	chapters repository.ChapterRepository
	logger   *log.Logger
	now      func() time.Time
}

func NewChapterService(courses repository.CourseRepository, chapters repository.ChapterRepository, logger *log.Logger) ChapterService {
	return &chapterService{courses: courses, chapters: chapters, logger: logger, now: time.Now}
}

func (s *chapterService) Create(ctx context.Context, ownerID, courseID string, in CreateChapterInput) (*models.Chapter, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := invalidFields(validation.Struct(in)); err != nil {
		return nil, err
	}
	if _, err := s.ownedCourse(ctx, ownerID, courseID); err != nil {
		return nil, err
	}

	position, err := s.chapters.NextPosition(ctx, courseID)
	if err != nil {
		return nil, err
	}

	chapter := &models.Chapter{CourseID: courseID, Title: in.Title, Position: position}
	if err := s.chapters.Create(ctx, chapter); err != nil {
		s.logger.Printf("[CHAPTERS] create in %s: %v", courseID, err)
		return nil, err
	}
	return chapter, nil
}

func (s *chapterService) Update(ctx context.Context, ownerID, courseID, chapterID string, in UpdateChapterInput) (*models.Chapter, error) {
	if err := invalidFields(validation.Struct(in)); err != nil {
		return nil, err
	}
	chapter, err := s.ownedChapter(ctx, ownerID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidFields(map[string]string{"title": "title is a required field"})
		}
		chapter.Title = title
	}
	if in.Description != nil {
		chapter.Description = *in.Description
	}
	if in.IsFree != nil {
		chapter.IsFree = *in.IsFree
	}

	if err := s.chapters.Save(ctx, chapter); err != nil {
		s.logger.Printf("[CHAPTER_ID] update %s: %v", chapterID, err)
		return nil, err
	}
	return chapter, nil
}

func (s *chapterService) Reorder(ctx context.Context, ownerID, courseID string, in ReorderInput) error {
	if err := invalidFields(validation.Struct(in)); err != nil {
		return err
	}
	if _, err := s.ownedCourse(ctx, ownerID, courseID); err != nil {
		return err
	}
	if err := s.chapters.Reorder(ctx, courseID, in.List); err != nil {
		s.logger.Printf("[REORDER] %s: %v", courseID, err)
		return notFound(err)
	}
	return nil
}

func (s *chapterService) Publish(ctx context.Context, ownerID, courseID, chapterID string) (*models.Chapter, error) {
	chapter, err := s.ownedChapter(ctx, ownerID, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter.Title == "" || chapter.Description == "" || chapter.VideoURL == "" {
		return nil, invalid("Missing required fields")
	}

	chapter.IsPublished = true
	if err := s.chapters.Save(ctx, chapter); err != nil {
		s.logger.Printf("[CHAPTER_PUBLISH] %s: %v", chapterID, err)
		return nil, err
	}
	return chapter, nil
}

// Unpublish hides the chapter and takes the course offline once it has no
// published chapter left.
func (s *chapterService) Unpublish(ctx context.Context, ownerID, courseID, chapterID string) (*models.Chapter, error) {
	chapter, err := s.ownedChapter(ctx, ownerID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	chapter.IsPublished = false
	if err := s.chapters.Save(ctx, chapter); err != nil {
		s.logger.Printf("[CHAPTER_UNPUBLISH] %s: %v", chapterID, err)
		return nil, err
	}
	if err := s.unpublishEmptyCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *chapterService) Delete(ctx context.Context, ownerID, courseID, chapterID string) error {
	if _, err := s.ownedChapter(ctx, ownerID, courseID, chapterID); err != nil {
		return err
	}
	if err := s.chapters.Delete(ctx, chapterID); err != nil {
		s.logger.Printf("[CHAPTER_ID_DELETE] %s: %v", chapterID, err)
		return err
	}
	return s.unpublishEmptyCourse(ctx, courseID)
}

func (s *chapterService) UploadVideo(ctx context.Context, ownerID, courseID, chapterID string, file Upload) error {
	if len(file.Data) == 0 {
		return invalid("No file uploaded")
	}
	chapter, err := s.ownedChapter(ctx, ownerID, courseID, chapterID)
	if err != nil {
		return err
	}

	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	video := &models.Video{
		ChapterID: chapterID,
		Filename:  fmt.Sprintf("%d-%s", s.now().UnixMilli(), whitespace.ReplaceAllString(file.Name, "_")),
		MimeType:  mimeType,
		Data:      file.Data,
	}
	if err := s.chapters.UpsertVideo(ctx, video); err != nil {
		s.logger.Printf("[VIDEO_UPLOAD] %s: %v", chapterID, err)
		return err
	}

	chapter.VideoURL = fmt.Sprintf("/api/courses/%s/chapters/%s/video", courseID, chapterID)
	if err := s.chapters.Save(ctx, chapter); err != nil {
		s.logger.Printf("[VIDEO_UPLOAD] %s: %v", chapterID, err)
		return err
	}
	return nil
}

func (s *chapterService) Video(ctx context.Context, courseID, chapterID string) (*models.Video, error) {
	if _, err := s.chapters.Find(ctx, courseID, chapterID); err != nil {
		return nil, notFound(err)
	}
	video, err := s.chapters.FindVideo(ctx, chapterID)
	if err != nil {
		return nil, notFound(err)
	}
	return video, nil
}

func (s *chapterService) ownedCourse(ctx context.Context, ownerID, courseID string) (*models.Course, error) {
	course, err := s.courses.FindOwned(ctx, courseID, ownerID)
	if err != nil {
		return nil, notFound(err)
	}
	return course, nil
}

func (s *chapterService) ownedChapter(ctx context.Context, ownerID, courseID, chapterID string) (*models.Chapter, error) {
	if _, err := s.ownedCourse(ctx, ownerID, courseID); err != nil {
		return nil, err
	}
	chapter, err := s.chapters.Find(ctx, courseID, chapterID)
	if err != nil {
		return nil, notFound(err)
	}
	return chapter, nil
}

func (s *chapterService) unpublishEmptyCourse(ctx context.Context, courseID string) error {
	published, err := s.chapters.ListPublished(ctx, courseID)
	if err != nil {
		return err
	}
	if len(published) > 0 {
		return nil
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return notFound(err)
	}
	if !course.IsPublished {
		return nil
	}
	course.IsPublished = false
	return s.courses.Save(ctx, course)
}
