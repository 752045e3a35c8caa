package analyticsHandler

import (
	contextPkg "BudgetBuddy/pkg/context"
	"BudgetBuddy/pkg/handlerUtil"
	jwtPkg "BudgetBuddy/pkg/jwt"
	"BudgetBuddy/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *AnalyticsHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing analytics summary request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	token, err := jwtPkg.GetBearerToken(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	monthYear := ctx.Query("monthYear")

	summary, err := h.analyticsService.GetUserAnalytics(c, userData.ID, token, monthYear)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_analytics_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}

func (h *AnalyticsHandler) GetAvailableMonths(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing available months request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	token, err := jwtPkg.GetBearerToken(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	months, err := h.analyticsService.GetAvailableMonths(c, userData.ID, token)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_available_months")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, months)
	}
}
