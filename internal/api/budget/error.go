package budget

import (
	"BudgetBuddy/pkg/response"
	"net/http"
)

var (
	ErrBudgetNotFound     = response.NewError(http.StatusNotFound, "budget not found")
	ErrBudgetNotOwned     = response.NewError(http.StatusForbidden, "budget does not belong to user")
	ErrInvalidCategory    = response.NewError(http.StatusBadRequest, "category is required")
	ErrInvalidLimitAmount = response.NewError(http.StatusBadRequest, "limit amount must not be negative")
	ErrInvalidMonthYear   = response.NewError(http.StatusBadRequest, "monthYear must be in YYYY-MM format")
	ErrMonthNotEmpty      = response.NewError(http.StatusConflict, "budgets for the target month already exist")
	ErrCreateBudgets      = response.NewError(http.StatusInternalServerError, "failed to create budgets")
	ErrUpdateBudget       = response.NewError(http.StatusInternalServerError, "failed to update budget")
	ErrCopyBudgets        = response.NewError(http.StatusInternalServerError, "failed to copy budgets")
)
