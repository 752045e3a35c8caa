package analytics

import (
	"BudgetBuddy/pkg/response"
	"net/http"
)

var (
	ErrInvalidMonthYear = response.NewError(http.StatusBadRequest, "monthYear must be in YYYY-MM format")
	ErrUpstreamExpense  = response.NewError(http.StatusBadGateway, "failed to fetch expenses")
	ErrUpstreamBudget   = response.NewError(http.StatusBadGateway, "failed to fetch budgets")
	ErrUpstreamIncome   = response.NewError(http.StatusBadGateway, "failed to fetch income")
)
