package analyticsService

import (
	"BudgetBuddy/internal/api/analytics"
	analyticsClient "BudgetBuddy/internal/api/analytics/client"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAnalyticsService interface {
	GetUserAnalytics(ctx context.Context, userID string, token string, monthYear string) (analytics.SummaryResponse, error)
	GetAvailableMonths(ctx context.Context, userID string, token string) ([]string, error)
}

type analyticsService struct {
	log           *logrus.Logger
	expenseClient analyticsClient.IExpenseClient
	budgetClient  analyticsClient.IBudgetClient
	incomeClient  analyticsClient.IIncomeClient
}

func NewAnalyticsService(
	log *logrus.Logger,
	expenseClient analyticsClient.IExpenseClient,
	budgetClient analyticsClient.IBudgetClient,
	incomeClient analyticsClient.IIncomeClient,
) IAnalyticsService {
	return &analyticsService{
		log:           log,
		expenseClient: expenseClient,
		budgetClient:  budgetClient,
		incomeClient:  incomeClient,
	}
}
