package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
)

type AnalyticsController struct {
	Analytics services.AnalyticsService
}

func NewAnalyticsController(analytics services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// [+] GetAnalytics godoc
// @Summary Course completion analytics
// @Description Engaged and completed learners per course owned by the caller
// @Tags teacher
// @Produce json
// @Success 200 {object} analytics.Result
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /teacher/analytics [get]
func (ac *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(ac.Analytics.GetAnalytics(c.UserContext(), middleware.UserID(c)))
}
