package activityService

import (
	activityRepository "BudgetBuddy/internal/api/activity/repository"
	"BudgetBuddy/internal/entity"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IActivityService interface {
	StoreEvent(ctx context.Context, event entity.ActivityEvent) error
	GetActivityLogs(ctx context.Context) ([]entity.ActivityLog, error)
	GetActivityLogsByUser(ctx context.Context, userID string) ([]entity.ActivityLog, error)
	GetActivityLogsByEntityType(ctx context.Context, entityType string) ([]entity.ActivityLog, error)
	GetActivityLogsBetween(ctx context.Context, from string, to string) ([]entity.ActivityLog, error)
	Run(ctx context.Context) error
}

type activityService struct {
	log                *logrus.Logger
	activityRepository activityRepository.Repository
	events             amqp.IEventBus
	utils              utils.IUtils
}

func NewActivityService(log *logrus.Logger, ar activityRepository.Repository, events amqp.IEventBus, utils utils.IUtils) IActivityService {
	return &activityService{
		log:                log,
		activityRepository: ar,
		events:             events,
		utils:              utils,
	}
}
