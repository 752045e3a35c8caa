package authService

import (
	"BudgetBuddy/internal/api/auth"
	authRepository "BudgetBuddy/internal/api/auth/repository"
	"BudgetBuddy/pkg/bcrypt"
	"BudgetBuddy/pkg/redis"
	"BudgetBuddy/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterUserRequest) error
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.LoginUserResponse, error)
	GetProfile(ctx context.Context, userID string) (auth.ProfileResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	redisServer    redis.IRedis
	bcrypt         bcrypt.IBcrypt
	utils          utils.IUtils
}

func NewAuthService(log *logrus.Logger, ar authRepository.Repository, redisServer redis.IRedis, bcrypt bcrypt.IBcrypt, utils utils.IUtils) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		redisServer:    redisServer,
		bcrypt:         bcrypt,
		utils:          utils,
	}
}
