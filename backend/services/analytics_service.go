package services

import (
	"context"
	"log"

	"courtside/backend/analytics"
	"courtside/backend/repository"
)

type AnalyticsService interface {
	// GetAnalytics never fails: datastore errors are logged and the empty
	// result is returned instead.
	GetAnalytics(ctx context.Context, teacherID string) analytics.Result
}

type analyticsService struct {
	courses repository.CourseRepository
	groupBy analytics.GroupBy
	logger  *log.Logger
}

func NewAnalyticsService(courses repository.CourseRepository, groupBy analytics.GroupBy, logger *log.Logger) AnalyticsService {
	return &analyticsService{courses: courses, groupBy: groupBy, logger: logger}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, teacherID string) analytics.Result {
	courses, err := s.courses.FetchCoursesWithProgress(ctx, teacherID)
	if err != nil {
		s.logger.Printf("[GET_ANALYTICS] teacher=%s: %v", teacherID, err)
		return analytics.Empty()
	}
	return analytics.AggregateBy(analytics.FromCourses(courses), s.groupBy)
}
