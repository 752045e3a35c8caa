package auth

import (
	"BudgetBuddy/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidRefreshToken    = response.NewError(http.StatusUnauthorized, "invalid or expired refresh token")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
)
