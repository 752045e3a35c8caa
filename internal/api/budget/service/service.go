package budgetService

import (
	"BudgetBuddy/internal/api/budget"
	budgetRepository "BudgetBuddy/internal/api/budget/repository"
	"BudgetBuddy/internal/entity"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	AddBudgets(ctx context.Context, userID string, reqs []budget.CreateBudgetRequest) ([]entity.Budget, error)
	GetBudgetsByUser(ctx context.Context, userID string) ([]entity.Budget, error)
	GetBudgetsByUserAndMonth(ctx context.Context, userID string, monthYear string) ([]entity.Budget, error)
	GetBudgetByCategoryAndMonth(ctx context.Context, userID string, category string, monthYear string) (entity.Budget, error)
	UpdateBudget(ctx context.Context, userID string, id string, req budget.UpdateBudgetRequest) (entity.Budget, error)
	CopyBudgets(ctx context.Context, userID string, fromMonthYear string, toMonthYear string) ([]entity.Budget, error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	events           amqp.IEventBus
	utils            utils.IUtils
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, events amqp.IEventBus, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		events:           events,
		utils:            utils,
	}
}
