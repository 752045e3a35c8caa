package incomeService

import (
	"BudgetBuddy/internal/api/income"
	incomeRepository "BudgetBuddy/internal/api/income/repository"
	"BudgetBuddy/internal/entity"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IIncomeService interface {
	AddIncome(ctx context.Context, userID string, req income.CreateIncomeRequest) (entity.Income, error)
	GetIncomesByUser(ctx context.Context, userID string) ([]entity.Income, error)
	GetIncomesByUserBetweenDates(ctx context.Context, userID string, startDate string, endDate string) ([]entity.Income, error)
	GetIncomeByID(ctx context.Context, userID string, id string) (entity.Income, error)
	UpdateIncome(ctx context.Context, userID string, id string, req income.UpdateIncomeRequest) (entity.Income, error)
	DeleteIncome(ctx context.Context, userID string, id string) error
}

type incomeService struct {
	log              *logrus.Logger
	incomeRepository incomeRepository.Repository
	events           amqp.IEventBus
	utils            utils.IUtils
}

func NewIncomeService(log *logrus.Logger, ir incomeRepository.Repository, events amqp.IEventBus, utils utils.IUtils) IIncomeService {
	return &incomeService{
		log:              log,
		incomeRepository: ir,
		events:           events,
		utils:            utils,
	}
}
