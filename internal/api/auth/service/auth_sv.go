package authService

import (
	"BudgetBuddy/internal/api/auth"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	jwtPkg "BudgetBuddy/pkg/jwt"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const refreshTokenTTL = 7 * 24 * time.Hour

func (s *authService) Register(ctx context.Context, req auth.RegisterUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Users.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing email")
		return err
	}

	if existing.ID != "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Email already registered")
		return auth.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := entity.User{
		ID:        ULID,
		Email:     req.Email,
		Name:      req.Name,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.ErrCreateUser
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password mismatch on login")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	userID, err := s.redisServer.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Refresh token not found or expired")
		return auth.LoginUserResponse{}, auth.ErrInvalidRefreshToken
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetUserByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get user for refresh")
		return auth.LoginUserResponse{}, err
	}

	// Rotate: the presented token is spent whether or not issuing succeeds.
	if err := s.redisServer.DeleteRefreshToken(ctx, req.RefreshToken); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete used refresh token")
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) GetProfile(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.ProfileResponse{}, err
	}

	user, err := repo.Users.GetUserByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get user profile")
		return auth.ProfileResponse{}, err
	}

	return auth.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *authService) issueTokens(ctx context.Context, user entity.User) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	userData := map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginUserResponse{}, err
	}

	refreshToken := uuid.NewString()
	if err := s.redisServer.SetRefreshToken(ctx, refreshToken, user.ID, refreshTokenTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store refresh token")
		return auth.LoginUserResponse{}, err
	}

	return auth.LoginUserResponse{
		AccessToken:  token,
		RefreshToken: refreshToken,
		ExpiresAt:    expired,
	}, nil
}
