package config

import (
	"BudgetBuddy/database/postgres"
	activityHandler "BudgetBuddy/internal/api/activity/handler"
	activityRepository "BudgetBuddy/internal/api/activity/repository"
	activityService "BudgetBuddy/internal/api/activity/service"
	analyticsClient "BudgetBuddy/internal/api/analytics/client"
	analyticsHandler "BudgetBuddy/internal/api/analytics/handler"
	analyticsService "BudgetBuddy/internal/api/analytics/service"
	authHandler "BudgetBuddy/internal/api/auth/handler"
	authRepository "BudgetBuddy/internal/api/auth/repository"
	authService "BudgetBuddy/internal/api/auth/service"
	budgetHandler "BudgetBuddy/internal/api/budget/handler"
	budgetRepository "BudgetBuddy/internal/api/budget/repository"
	budgetService "BudgetBuddy/internal/api/budget/service"
	expenseHandler "BudgetBuddy/internal/api/expense/handler"
	expenseRepository "BudgetBuddy/internal/api/expense/repository"
	expenseService "BudgetBuddy/internal/api/expense/service"
	incomeHandler "BudgetBuddy/internal/api/income/handler"
	incomeRepository "BudgetBuddy/internal/api/income/repository"
	incomeService "BudgetBuddy/internal/api/income/service"
	"BudgetBuddy/internal/middleware"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/bcrypt"
	"BudgetBuddy/pkg/redis"
	"BudgetBuddy/pkg/s3"
	"BudgetBuddy/pkg/utils"
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine          *fiber.App
	db              *sqlx.DB
	log             *logrus.Logger
	middleware      middleware.Middleware
	validator       *validator.Validate
	utils           utils.IUtils
	bcryptUtils     bcrypt.IBcrypt
	handlers        []handler
	redisServer     redis.IRedis
	eventBus        amqp.IEventBus
	s3Client        s3.ItfS3
	activityService activityService.IActivityService
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithEventBus(eventBus amqp.IEventBus) ServerOption {
	return func(s *Server) error {
		s.eventBus = eventBus
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Expense Domain
	expenseRepo := expenseRepository.New(s.db, s.log)
	expenseServices := expenseService.NewExpenseService(s.log, expenseRepo, s.eventBus, s.s3Client, s.utils)
	expenseHandlers := expenseHandler.New(s.log, s.validator, s.middleware, expenseServices)

	// Income Domain
	incomeRepo := incomeRepository.New(s.db, s.log)
	incomeServices := incomeService.NewIncomeService(s.log, incomeRepo, s.eventBus, s.utils)
	incomeHandlers := incomeHandler.New(s.log, s.validator, s.middleware, incomeServices)

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, s.eventBus, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Analytics Domain
	expenseClient := analyticsClient.NewExpenseClient(s.log)
	budgetClient := analyticsClient.NewBudgetClient(s.log)
	incomeClient := analyticsClient.NewIncomeClient(s.log)
	analyticsServices := analyticsService.NewAnalyticsService(s.log, expenseClient, budgetClient, incomeClient)
	analyticsHandlers := analyticsHandler.New(s.log, s.middleware, analyticsServices)

	// Activity Domain
	activityRepo := activityRepository.New(s.db, s.log)
	s.activityService = activityService.NewActivityService(s.log, activityRepo, s.eventBus, s.utils)
	activityHandlers := activityHandler.New(s.log, s.middleware, s.activityService)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers, expenseHandlers, incomeHandlers, budgetHandlers, analyticsHandlers, activityHandlers)
}

// StartActivityConsumer drains the activity queue into the activity log store
// until ctx is cancelled.
func (s *Server) StartActivityConsumer(ctx context.Context) {
	go func() {
		if err := s.activityService.Run(ctx); err != nil {
			s.log.Errorf("Activity consumer stopped: %v", err)
		}
	}()
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
