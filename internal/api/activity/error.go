package activity

import (
	"BudgetBuddy/pkg/response"
	"net/http"
)

var (
	ErrInvalidTimeRange = response.NewError(http.StatusBadRequest, "from and to must be RFC3339 timestamps")
	ErrStoreActivityLog = response.NewError(http.StatusInternalServerError, "failed to store activity log")
)
