package analyticsHandler

import (
	analyticsService "BudgetBuddy/internal/api/analytics/service"
	"BudgetBuddy/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	log              *logrus.Logger
	middleware       middleware.Middleware
	analyticsService analyticsService.IAnalyticsService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	analyticsService analyticsService.IAnalyticsService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log,
		middleware:       middleware,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) Start(srv fiber.Router) {
	analytics := srv.Group("/analytics")

	analytics.Get("/summary", h.middleware.NewTokenMiddleware, h.GetSummary)
	analytics.Get("/available-months", h.middleware.NewTokenMiddleware, h.GetAvailableMonths)
}
