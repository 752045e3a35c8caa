package activityHandler

import (
	contextPkg "BudgetBuddy/pkg/context"
	"BudgetBuddy/pkg/handlerUtil"
	"BudgetBuddy/pkg/log"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *ActivityHandler) GetActivityLogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get activity logs request")

	logs, err := h.activityService.GetActivityLogs(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_activity_logs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, logs)
	}
}

func (h *ActivityHandler) GetActivityLogsByUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get activity logs by user request")

	userID := ctx.Params("userId")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("user ID is required"), ctx.Path())
	}

	logs, err := h.activityService.GetActivityLogsByUser(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_activity_logs_by_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, logs)
	}
}

func (h *ActivityHandler) GetActivityLogsByEntityType(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get activity logs by entity type request")

	entityType := ctx.Params("entityType")
	if entityType == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("entity type is required"), ctx.Path())
	}

	logs, err := h.activityService.GetActivityLogsByEntityType(c, entityType)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_activity_logs_by_type")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, logs)
	}
}

func (h *ActivityHandler) GetActivityLogsBetween(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get activity logs in range request")

	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("from and to are required"), ctx.Path())
	}

	logs, err := h.activityService.GetActivityLogsBetween(c, from, to)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_activity_logs_between")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, logs)
	}
}
