package authHandler

import (
	authService "BudgetBuddy/internal/api/auth/service"
	"BudgetBuddy/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	authService authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: authService,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/register", h.RegisterUser)
	auth.Post("/login", h.LoginUser)
	auth.Post("/refresh", h.RefreshToken)
	auth.Get("/profile", h.middleware.NewTokenMiddleware, h.GetProfile)
}
