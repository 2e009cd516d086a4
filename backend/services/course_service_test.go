package services

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"courtside/backend/models"
	"courtside/backend/repository"
	"courtside/backend/testdata/mockrepository"
)

type CourseServiceTestSuite struct {
	suite.Suite

	repo    *mockrepository.CourseRepository
	service CourseService
}

func TestCourseServiceSuite(t *testing.T) {
	suite.Run(t, new(CourseServiceTestSuite))
}

func (s *CourseServiceTestSuite) SetupTest() {
	s.repo = &mockrepository.CourseRepository{}
	s.service = NewCourseService(s.repo, log.New(io.Discard, "", 0))
}

func strPtr(v string) *string { return &v }

func publishableCourse() *models.Course {
	return &models.Course{
		Base:        models.Base{ID: "c1"},
		UserID:      "t1",
		Title:       "Footwork",
		Description: "Pivots and jab steps",
		ImageURL:    "data:image/png;base64,AAEC",
		CategoryID:  strPtr("cat-1"),
		Chapters:    []models.Chapter{{Title: "Intro", IsPublished: true}},
	}
}

func (s *CourseServiceTestSuite) TestCreate() {
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Course) bool {
		return c.UserID == "t1" && c.Title == "Shooting"
	})).Return(nil)

	course, err := s.service.Create(context.Background(), "t1", CreateCourseInput{Title: "  Shooting "})

	s.Require().NoError(err)
	s.Equal("Shooting", course.Title)
	s.False(course.IsPublished)
}

func (s *CourseServiceTestSuite) TestCreate_RequiresTitle() {
	_, err := s.service.Create(context.Background(), "t1", CreateCourseInput{Title: "  "})

	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "title")
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestGet_NotOwner() {
	s.repo.On("FindOwned", mock.Anything, "c1", "intruder").Return(nil, repository.ErrNotFound)

	_, err := s.service.Get(context.Background(), "intruder", "c1")

	s.ErrorIs(err, ErrNotFound)
}

func (s *CourseServiceTestSuite) TestUpdate_Partial() {
	course := &models.Course{Base: models.Base{ID: "c1"}, UserID: "t1", Title: "Old", Description: "keep"}
	s.repo.On("FindOwned", mock.Anything, "c1", "t1").Return(course, nil)
	s.repo.On("Save", mock.Anything, course).Return(nil)
	price := 19.5

	updated, err := s.service.Update(context.Background(), "t1", "c1", UpdateCourseInput{Title: strPtr("New"), Price: &price})

	s.Require().NoError(err)
	s.Equal("New", updated.Title)
	s.Equal("keep", updated.Description)
	s.Equal(19.5, *updated.Price)
}

func (s *CourseServiceTestSuite) TestUpdate_RejectsNegativePrice() {
	price := -1.0
	_, err := s.service.Update(context.Background(), "t1", "c1", UpdateCourseInput{Price: &price})

	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "price")
}

func (s *CourseServiceTestSuite) TestPublish() {
	course := publishableCourse()
	s.repo.On("FindOwned", mock.Anything, "c1", "t1").Return(course, nil)
	s.repo.On("Save", mock.Anything, course).Return(nil)

	published, err := s.service.Publish(context.Background(), "t1", "c1")

	s.Require().NoError(err)
	s.True(published.IsPublished)
}

func (s *CourseServiceTestSuite) TestPublish_MissingFields() {
	cases := map[string]func(c *models.Course){
		"no description":       func(c *models.Course) { c.Description = "" },
		"no image":             func(c *models.Course) { c.ImageURL = "" },
		"no category":          func(c *models.Course) { c.CategoryID = nil },
		"no published chapter": func(c *models.Course) { c.Chapters[0].IsPublished = false },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			repo := &mockrepository.CourseRepository{}
			service := NewCourseService(repo, log.New(io.Discard, "", 0))
			course := publishableCourse()
			mutate(course)
			repo.On("FindOwned", mock.Anything, "c1", "t1").Return(course, nil)

			_, err := service.Publish(context.Background(), "t1", "c1")

			var verr *ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Equal("Missing required fields", verr.Message)
			repo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
		})
	}
}

func (s *CourseServiceTestSuite) TestSetImage_StoresDataURL() {
	course := &models.Course{Base: models.Base{ID: "c1"}, UserID: "t1"}
	s.repo.On("FindOwned", mock.Anything, "c1", "t1").Return(course, nil)
	s.repo.On("Save", mock.Anything, course).Return(nil)

	_, err := s.service.SetImage(context.Background(), "t1", "c1", Upload{Name: "a.png", MimeType: "image/png", Data: []byte{0, 1, 2}})

	s.Require().NoError(err)
	s.Equal("data:image/png;base64,AAEC", course.ImageURL)
}

func (s *CourseServiceTestSuite) TestSetImage_RejectsNonImage() {
	_, err := s.service.SetImage(context.Background(), "t1", "c1", Upload{Name: "a.txt", MimeType: "text/plain", Data: []byte("x")})

	var verr *ValidationError
	s.ErrorAs(err, &verr)
}

func (s *CourseServiceTestSuite) TestImage() {
	s.repo.On("FindByID", mock.Anything, "c1").Return(&models.Course{ImageURL: "data:image/png;base64,AAEC"}, nil)
	s.repo.On("FindByID", mock.Anything, "c2").Return(&models.Course{}, nil)

	mimeType, data, err := s.service.Image(context.Background(), "c1")
	s.Require().NoError(err)
	s.Equal("image/png", mimeType)
	s.Equal([]byte{0, 1, 2}, data)

	_, _, err = s.service.Image(context.Background(), "c2")
	s.ErrorIs(err, ErrNotFound)
}

func (s *CourseServiceTestSuite) TestAddAttachment_DefaultsMimeType() {
	s.repo.On("FindOwned", mock.Anything, "c1", "t1").Return(&models.Course{UserID: "t1"}, nil)
	s.repo.On("CreateAttachment", mock.Anything, mock.AnythingOfType("*models.Attachment")).Return(nil)

	a, err := s.service.AddAttachment(context.Background(), "t1", "c1", Upload{Name: "drills.pdf", Data: []byte("%PDF")})

	s.Require().NoError(err)
	s.Equal("application/octet-stream", a.MimeType)
	s.Equal("c1", a.CourseID)
}

func (s *CourseServiceTestSuite) TestDeleteAttachment_NotInCourse() {
	s.repo.On("FindOwned", mock.Anything, "c1", "t1").Return(&models.Course{UserID: "t1"}, nil)
	s.repo.On("FindAttachment", mock.Anything, "c1", "a9").Return(nil, repository.ErrNotFound)

	err := s.service.DeleteAttachment(context.Background(), "t1", "c1", "a9")

	s.ErrorIs(err, ErrNotFound)
	s.repo.AssertNotCalled(s.T(), "DeleteAttachment", mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestCategories_NeverNil() {
	s.repo.On("ListCategories", mock.Anything).Return(nil, nil)

	categories, err := s.service.Categories(context.Background())

	s.Require().NoError(err)
	s.NotNil(categories)
	s.Empty(categories)
}

func (s *CourseServiceTestSuite) TestSeedCategories() {
	s.repo.On("SeedCategories", mock.Anything, []string{"Beginner", "Amatuer", "Professional"}).Return(int64(3), nil)

	n, err := s.service.SeedCategories(context.Background())

	s.Require().NoError(err)
	s.Equal(int64(3), n)
}
