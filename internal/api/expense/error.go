package expense

import (
	"BudgetBuddy/pkg/response"
	"net/http"
)

var (
	ErrExpenseNotFound     = response.NewError(http.StatusNotFound, "expense not found")
	ErrExpenseNotOwned     = response.NewError(http.StatusForbidden, "expense does not belong to user")
	ErrInvalidExpense      = response.NewError(http.StatusBadRequest, "invalid expense data")
	ErrInvalidAmount       = response.NewError(http.StatusBadRequest, "amount must be positive")
	ErrInvalidCategory     = response.NewError(http.StatusBadRequest, "category is required")
	ErrInvalidDate         = response.NewError(http.StatusBadRequest, "invalid expense date")
	ErrInvalidDateRange    = response.NewError(http.StatusBadRequest, "invalid date range")
	ErrInvalidReceiptFile  = response.NewError(http.StatusBadRequest, "invalid receipt file type")
	ErrFailedUploadReceipt = response.NewError(http.StatusInternalServerError, "failed to upload receipt")
	ErrCreateExpense       = response.NewError(http.StatusInternalServerError, "failed to create expense")
	ErrUpdateExpense       = response.NewError(http.StatusInternalServerError, "failed to update expense")
	ErrDeleteExpense       = response.NewError(http.StatusInternalServerError, "failed to delete expense")
)
