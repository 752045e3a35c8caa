package expenseService

import (
	"BudgetBuddy/internal/api/expense"
	expenseRepository "BudgetBuddy/internal/api/expense/repository"
	"BudgetBuddy/internal/entity"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/s3"
	"BudgetBuddy/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
)

type IExpenseService interface {
	AddExpense(ctx context.Context, userID string, req expense.CreateExpenseRequest, receiptFile *multipart.FileHeader) (entity.Expense, error)
	GetExpensesByUser(ctx context.Context, userID string, filter expense.FilterExpensesQuery) ([]entity.Expense, error)
	GetExpenseByID(ctx context.Context, userID string, id string) (entity.Expense, error)
	UpdateExpense(ctx context.Context, userID string, id string, req expense.UpdateExpenseRequest, receiptFile *multipart.FileHeader) (entity.Expense, error)
	DeleteExpense(ctx context.Context, userID string, id string) error
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	events            amqp.IEventBus
	s3                s3.ItfS3
	utils             utils.IUtils
}

func NewExpenseService(log *logrus.Logger, er expenseRepository.Repository, events amqp.IEventBus, s3Client s3.ItfS3, utils utils.IUtils) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
		events:            events,
		s3:                s3Client,
		utils:             utils,
	}
}
