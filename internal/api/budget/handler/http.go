package budgetHandler

import (
	budgetService "BudgetBuddy/internal/api/budget/service"
	"BudgetBuddy/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/budgets")

	budgets.Post("/bulk", h.middleware.NewTokenMiddleware, h.CreateBudgets)
	budgets.Post("/copy", h.middleware.NewTokenMiddleware, h.CopyBudgets)
	budgets.Get("/", h.middleware.NewTokenMiddleware, h.GetBudgets)
	budgets.Get("/category", h.middleware.NewTokenMiddleware, h.GetBudgetByCategoryAndMonth)
	budgets.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBudget)
}
