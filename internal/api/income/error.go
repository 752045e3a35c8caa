package income

import (
	"BudgetBuddy/pkg/response"
	"net/http"
)

var (
	ErrIncomeNotFound   = response.NewError(http.StatusNotFound, "income not found")
	ErrIncomeNotOwned   = response.NewError(http.StatusForbidden, "income does not belong to user")
	ErrInvalidIncome    = response.NewError(http.StatusBadRequest, "invalid income data")
	ErrInvalidAmount    = response.NewError(http.StatusBadRequest, "amount must be positive")
	ErrInvalidDate      = response.NewError(http.StatusBadRequest, "invalid income date")
	ErrInvalidDateRange = response.NewError(http.StatusBadRequest, "invalid date range")
	ErrCreateIncome     = response.NewError(http.StatusInternalServerError, "failed to create income")
	ErrUpdateIncome     = response.NewError(http.StatusInternalServerError, "failed to update income")
	ErrDeleteIncome     = response.NewError(http.StatusInternalServerError, "failed to delete income")
)
