package budgetHandler

import (
	"BudgetBuddy/internal/api/budget"
	contextPkg "BudgetBuddy/pkg/context"
	"BudgetBuddy/pkg/handlerUtil"
	jwtPkg "BudgetBuddy/pkg/jwt"
	"BudgetBuddy/pkg/log"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *BudgetHandler) CreateBudgets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing bulk create budgets request")

	var reqs []budget.CreateBudgetRequest
	if err := ctx.BodyParser(&reqs); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if len(reqs) == 0 {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("at least one budget is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	for _, req := range reqs {
		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	created, err := h.budgetService.AddBudgets(c, userData.ID, reqs)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_budgets")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, created)
	}
}

func (h *BudgetHandler) CopyBudgets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing copy budgets request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("from and to months are required"), ctx.Path())
	}

	copied, err := h.budgetService.CopyBudgets(c, userData.ID, from, to)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "copy_budgets")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, copied)
	}
}

func (h *BudgetHandler) GetBudgets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get budgets request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	monthYear := ctx.Query("monthYear")

	var budgets interface{}
	if monthYear != "" {
		budgets, err = h.budgetService.GetBudgetsByUserAndMonth(c, userData.ID, monthYear)
	} else {
		budgets, err = h.budgetService.GetBudgetsByUser(c, userData.ID)
	}
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budgets")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budgets)
	}
}

func (h *BudgetHandler) GetBudgetByCategoryAndMonth(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get budget by category request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	category := ctx.Query("category")
	monthYear := ctx.Query("monthYear")
	if category == "" || monthYear == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("category and monthYear are required"), ctx.Path())
	}

	found, err := h.budgetService.GetBudgetByCategoryAndMonth(c, userData.ID, category, monthYear)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budget_by_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, found)
	}
}

func (h *BudgetHandler) UpdateBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update budget request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("budget ID is required"), ctx.Path())
	}

	var req budget.UpdateBudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	updated, err := h.budgetService.UpdateBudget(c, userData.ID, id, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, updated)
	}
}
