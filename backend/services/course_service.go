package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"courtside/backend/models"
	"courtside/backend/repository"
	"courtside/backend/validation"
)

// DefaultCategories are the skill levels a fresh install is seeded with.
var DefaultCategories = []string{"Beginner", "Amatuer", "Professional"}

// Upload is a file received from a multipart form.
type Upload struct {
	Name     string
	MimeType string
	Data     []byte
}

type CreateCourseInput struct {
	Title string `json:"title" validate:"required,max=200"`
}

// UpdateCourseInput is a partial update; nil fields are left untouched.
type UpdateCourseInput struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,uuid"`
}

type CourseService interface {
	Create(ctx context.Context, ownerID string, in CreateCourseInput) (*models.Course, error)
	List(ctx context.Context, ownerID string) ([]models.Course, error)
	Get(ctx context.Context, ownerID, courseID string) (*models.Course, error)
	Update(ctx context.Context, ownerID, courseID string, in UpdateCourseInput) (*models.Course, error)
	Delete(ctx context.Context, ownerID, courseID string) error
	Publish(ctx context.Context, ownerID, courseID string) (*models.Course, error)
	Unpublish(ctx context.Context, ownerID, courseID string) (*models.Course, error)

	Categories(ctx context.Context) ([]models.Category, error)
	SeedCategories(ctx context.Context) (int64, error)

	SetImage(ctx context.Context, ownerID, courseID string, file Upload) (*models.Course, error)
	// Image returns the decoded course image and its mime type.
	Image(ctx context.Context, courseID string) (string, []byte, error)

	AddAttachment(ctx context.Context, ownerID, courseID string, file Upload) (*models.Attachment, error)
	Attachments(ctx context.Context, ownerID, courseID string) ([]models.Attachment, error)
	Attachment(ctx context.Context, courseID, attachmentID string) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, ownerID, courseID, attachmentID string) error
}

type courseService struct {
	courses repository.CourseRepository
	logger  *log.Logger
}

func NewCourseService(courses repository.CourseRepository, logger *log.Logger) CourseService {
	return &courseService{courses: courses, logger: logger}
}

func (s *courseService) Create(ctx context.Context, ownerID string, in CreateCourseInput) (*models.Course, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := invalidFields(validation.Struct(in)); err != nil {
		return nil, err
	}

	course := &models.Course{UserID: ownerID, Title: in.Title}
	if err := s.courses.Create(ctx, course); err != nil {
		s.logger.Printf("[COURSES] create: %v", err)
		return nil, err
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context, ownerID string) ([]models.Course, error) {
	courses, err := s.courses.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func (s *courseService) Get(ctx context.Context, ownerID, courseID string) (*models.Course, error) {
	course, err := s.courses.FindOwned(ctx, courseID, ownerID)
	if err != nil {
		return nil, notFound(err)
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, ownerID, courseID string, in UpdateCourseInput) (*models.Course, error) {
	if err := invalidFields(validation.Struct(in)); err != nil {
		return nil, err
	}

	course, err := s.Get(ctx, ownerID, courseID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidFields(map[string]string{"title": "title is a required field"})
		}
		course.Title = title
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.Price != nil {
		course.Price = in.Price
	}
	if in.CategoryID != nil {
		course.CategoryID = in.CategoryID
		if *in.CategoryID == "" {
			course.CategoryID = nil
		}
	}

	if err := s.courses.Save(ctx, course); err != nil {
		s.logger.Printf("[COURSE_ID] update %s: %v", courseID, err)
		return nil, err
	}
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, ownerID, courseID string) error {
	if _, err := s.Get(ctx, ownerID, courseID); err != nil {
		return err
	}
	return notFound(s.courses.Delete(ctx, courseID))
}

func (s *courseService) Publish(ctx context.Context, ownerID, courseID string) (*models.Course, error) {
	course, err := s.Get(ctx, ownerID, courseID)
	if err != nil {
		return nil, err
	}

	hasPublishedChapter := false
	for _, ch := range course.Chapters {
		if ch.IsPublished {
			hasPublishedChapter = true
			break
		}
	}
	if course.Title == "" || course.Description == "" || course.ImageURL == "" ||
		course.CategoryID == nil || !hasPublishedChapter {
		return nil, invalid("Missing required fields")
	}

	course.IsPublished = true
	if err := s.courses.Save(ctx, course); err != nil {
		s.logger.Printf("[COURSE_ID_PUBLISH] %s: %v", courseID, err)
		return nil, err
	}
	return course, nil
}

func (s *courseService) Unpublish(ctx context.Context, ownerID, courseID string) (*models.Course, error) {
	course, err := s.Get(ctx, ownerID, courseID)
	if err != nil {
		return nil, err
	}

	course.IsPublished = false
	if err := s.courses.Save(ctx, course); err != nil {
		s.logger.Printf("[COURSE_ID_UNPUBLISH] %s: %v", courseID, err)
		return nil, err
	}
	return course, nil
}

func (s *courseService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.courses.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *courseService) SeedCategories(ctx context.Context) (int64, error) {
	return s.courses.SeedCategories(ctx, DefaultCategories)
}

func (s *courseService) SetImage(ctx context.Context, ownerID, courseID string, file Upload) (*models.Course, error) {
	if len(file.Data) == 0 {
		return nil, invalid("No file uploaded")
	}
	if !strings.HasPrefix(file.MimeType, "image/") {
		return nil, invalid("File must be an image")
	}

	course, err := s.Get(ctx, ownerID, courseID)
	if err != nil {
		return nil, err
	}

	course.ImageURL = fmt.Sprintf("data:%s;base64,%s", file.MimeType, base64.StdEncoding.EncodeToString(file.Data))
	if err := s.courses.Save(ctx, course); err != nil {
		s.logger.Printf("[COURSE_IMAGE_UPLOAD] %s: %v", courseID, err)
		return nil, err
	}
	return course, nil
}

func (s *courseService) Image(ctx context.Context, courseID string) (string, []byte, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return "", nil, notFound(err)
	}
	mimeType, data, err := decodeDataURL(course.ImageURL)
	if err != nil {
		return "", nil, ErrNotFound
	}
	return mimeType, data, nil
}

func (s *courseService) AddAttachment(ctx context.Context, ownerID, courseID string, file Upload) (*models.Attachment, error) {
	if len(file.Data) == 0 {
		return nil, invalid("No file uploaded")
	}
	if _, err := s.Get(ctx, ownerID, courseID); err != nil {
		return nil, err
	}

	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	attachment := &models.Attachment{
		CourseID: courseID,
		Name:     file.Name,
		MimeType: mimeType,
		Data:     file.Data,
	}
	if err := s.courses.CreateAttachment(ctx, attachment); err != nil {
		s.logger.Printf("[COURSE_ID_ATTACHMENTS] %s: %v", courseID, err)
		return nil, err
	}
	return attachment, nil
}

func (s *courseService) Attachments(ctx context.Context, ownerID, courseID string) ([]models.Attachment, error) {
	if _, err := s.Get(ctx, ownerID, courseID); err != nil {
		return nil, err
	}
	attachments, err := s.courses.ListAttachments(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if attachments == nil {
		attachments = []models.Attachment{}
	}
	return attachments, nil
}

func (s *courseService) Attachment(ctx context.Context, courseID, attachmentID string) (*models.Attachment, error) {
	attachment, err := s.courses.FindAttachment(ctx, courseID, attachmentID)
	if err != nil {
		return nil, notFound(err)
	}
	if attachment.MimeType == "" {
		attachment.MimeType = "application/octet-stream"
	}
	return attachment, nil
}

func (s *courseService) DeleteAttachment(ctx context.Context, ownerID, courseID, attachmentID string) error {
	if _, err := s.Get(ctx, ownerID, courseID); err != nil {
		return err
	}
	if _, err := s.courses.FindAttachment(ctx, courseID, attachmentID); err != nil {
		return notFound(err)
	}
	return s.courses.DeleteAttachment(ctx, attachmentID)
}

var errNotDataURL = errors.New("not a base64 data url")

// decodeDataURL splits "data:<mime>;base64,<payload>" into its parts.
func decodeDataURL(url string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return "", nil, errNotDataURL
	}
	mimeType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, errNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mimeType, data, nil
}
