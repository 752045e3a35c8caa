package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

type IRedis interface {
	SetRefreshToken(ctx context.Context, token string, userID string, expiration time.Duration) error
	GetRefreshToken(ctx context.Context, token string) (string, error)
	DeleteRefreshToken(ctx context.Context, token string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func refreshTokenKey(token string) string {
	return "refresh_token:" + token
}

func (r *redisClient) SetRefreshToken(ctx context.Context, token string, userID string, expiration time.Duration) error {
	err := r.client.Set(ctx, refreshTokenKey(token), userID, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error storing refresh token: %v", err))
		return err
	}
	return nil
}

// GetRefreshToken returns the user ID a refresh token was issued to, or
// redis.Nil when the token is unknown or expired.
func (r *redisClient) GetRefreshToken(ctx context.Context, token string) (string, error) {
	val, err := r.client.Get(ctx, refreshTokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting refresh token: %v", err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteRefreshToken(ctx context.Context, token string) error {
	if _, err := r.client.Del(ctx, refreshTokenKey(token)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting refresh token: %v", err))
		return err
	}
	return nil
}
