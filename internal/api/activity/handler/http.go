package activityHandler

import (
	activityService "BudgetBuddy/internal/api/activity/service"
	"BudgetBuddy/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ActivityHandler struct {
	log             *logrus.Logger
	middleware      middleware.Middleware
	activityService activityService.IActivityService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	activityService activityService.IActivityService,
) *ActivityHandler {
	return &ActivityHandler{
		log:             log,
		middleware:      middleware,
		activityService: activityService,
	}
}

func (h *ActivityHandler) Start(srv fiber.Router) {
	activity := srv.Group("/activity")

	activity.Get("/logs", h.middleware.NewTokenMiddleware, h.GetActivityLogs)
	activity.Get("/logs/range", h.middleware.NewTokenMiddleware, h.GetActivityLogsBetween)
	activity.Get("/logs/user/:userId", h.middleware.NewTokenMiddleware, h.GetActivityLogsByUser)
	activity.Get("/logs/type/:entityType", h.middleware.NewTokenMiddleware, h.GetActivityLogsByEntityType)
}
