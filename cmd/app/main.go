package main

import (
	"BudgetBuddy/internal/config"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/log"
	"BudgetBuddy/pkg/redis"
	"context"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()

	eventBus, err := amqp.New(logger)
	if err != nil {
		logger.Fatalf("Error connecting to message broker: %v", err)
	}
	defer eventBus.Close()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithEventBus(eventBus),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	server.StartActivityConsumer(consumerCtx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	stopConsumer()
}
