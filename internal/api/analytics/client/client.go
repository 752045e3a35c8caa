package analyticsClient

import (
	"BudgetBuddy/internal/api/analytics"
	"BudgetBuddy/internal/entity"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clients for the expense, budget and income HTTP surfaces. The caller's
// bearer token is forwarded explicitly so every upstream call runs with the
// caller's own identity.
type IExpenseClient interface {
	GetExpenses(ctx context.Context, token string) ([]entity.Expense, error)
}

type IBudgetClient interface {
	GetBudgets(ctx context.Context, token string) ([]entity.Budget, error)
}

type IIncomeClient interface {
	GetTotalIncome(ctx context.Context, token string) (float64, error)
}

type httpClient struct {
	log     *logrus.Logger
	client  *http.Client
	baseURL string
}

func newHTTPClient(log *logrus.Logger, baseURLEnv string) httpClient {
	return httpClient{
		log:     log,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: os.Getenv(baseURLEnv),
	}
}

func (c httpClient) getJSON(ctx context.Context, path string, token string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, dest)
}

type expenseClient struct {
	httpClient
}

func NewExpenseClient(log *logrus.Logger) IExpenseClient {
	return &expenseClient{newHTTPClient(log, "EXPENSE_SERVICE_URL")}
}

func (c *expenseClient) GetExpenses(ctx context.Context, token string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	if err := c.getJSON(ctx, "/expenses", token, &expenses); err != nil {
		c.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to fetch expenses from upstream")
		return nil, analytics.ErrUpstreamExpense
	}
	return expenses, nil
}

type budgetClient struct {
	httpClient
}

func NewBudgetClient(log *logrus.Logger) IBudgetClient {
	return &budgetClient{newHTTPClient(log, "BUDGET_SERVICE_URL")}
}

func (c *budgetClient) GetBudgets(ctx context.Context, token string) ([]entity.Budget, error) {
	var budgets []entity.Budget
	if err := c.getJSON(ctx, "/budgets", token, &budgets); err != nil {
		c.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to fetch budgets from upstream")
		return nil, analytics.ErrUpstreamBudget
	}
	return budgets, nil
}

type incomeClient struct {
	httpClient
}

func NewIncomeClient(log *logrus.Logger) IIncomeClient {
	return &incomeClient{newHTTPClient(log, "INCOME_SERVICE_URL")}
}

// GetTotalIncome sums the caller's income records; the upstream only exposes
// the raw list.
func (c *incomeClient) GetTotalIncome(ctx context.Context, token string) (float64, error) {
	var incomes []entity.Income
	if err := c.getJSON(ctx, "/income", token, &incomes); err != nil {
		c.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to fetch income from upstream")
		return 0, analytics.ErrUpstreamIncome
	}

	var total float64
	for _, i := range incomes {
		total += i.Amount
	}
	return total, nil
}
