package analyticsService

import (
	"BudgetBuddy/internal/api/analytics"
	"BudgetBuddy/internal/entity"
	contextPkg "BudgetBuddy/pkg/context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// GetUserAnalytics builds the spending summary for one user. Expenses and
// budgets are narrowed to monthYear when it is set; income always covers the
// full history, so net savings is lifetime income minus the selected month's
// spend.
func (s *analyticsService) GetUserAnalytics(ctx context.Context, userID string, token string, monthYear string) (analytics.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if monthYear != "" && !entity.IsValidMonthYear(monthYear) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month_year": monthYear,
		}).Warn("Invalid monthYear for analytics summary")
		return analytics.SummaryResponse{}, analytics.ErrInvalidMonthYear
	}

	var (
		expenses    []entity.Expense
		budgets     []entity.Budget
		totalIncome float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, err = s.expenseClient.GetExpenses(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetClient.GetBudgets(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		totalIncome, err = s.incomeClient.GetTotalIncome(gctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to fetch analytics inputs")
		return analytics.SummaryResponse{}, err
	}

	filteredExpenses := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.InMonth(monthYear) {
			filteredExpenses = append(filteredExpenses, e)
		}
	}

	filteredBudgets := budgets
	if monthYear != "" {
		filteredBudgets = make([]entity.Budget, 0, len(budgets))
		for _, b := range budgets {
			if b.MonthYear == monthYear {
				filteredBudgets = append(filteredBudgets, b)
			}
		}
	}

	var totalExpenses float64
	for _, e := range filteredExpenses {
		totalExpenses += e.Amount
	}

	return analytics.SummaryResponse{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetSavings:    totalIncome - totalExpenses,
		BudgetUsage:   aggregateBudgetUsage(filteredExpenses, filteredBudgets),
	}, nil
}

// GetAvailableMonths lists the distinct months the user has budgets for,
// newest first.
func (s *analyticsService) GetAvailableMonths(ctx context.Context, userID string, token string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	budgets, err := s.budgetClient.GetBudgets(ctx, token)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to fetch budgets for available months")
		return nil, err
	}

	seen := make(map[string]struct{}, len(budgets))
	months := make([]string, 0, len(budgets))
	for _, b := range budgets {
		if b.MonthYear == "" {
			continue
		}
		if _, ok := seen[b.MonthYear]; ok {
			continue
		}
		seen[b.MonthYear] = struct{}{}
		months = append(months, b.MonthYear)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months, nil
}

// aggregateBudgetUsage pairs each budgeted category with the spend recorded
// against it. Duplicate budgets for a category have their limits summed.
// Categories with spend but no budget are left out; a zero limit yields zero
// percent used no matter the spend.
func aggregateBudgetUsage(expenses []entity.Expense, budgets []entity.Budget) []analytics.BudgetUsage {
	spentByCategory := make(map[string]float64)
	for _, e := range expenses {
		spentByCategory[e.Category] += e.Amount
	}

	limitByCategory := make(map[string]float64)
	for _, b := range budgets {
		limitByCategory[b.Category] += b.LimitAmount
	}

	usage := make([]analytics.BudgetUsage, 0, len(limitByCategory))
	for category, limit := range limitByCategory {
		spent := spentByCategory[category]

		var percentUsed float64
		if limit != 0 {
			percentUsed = spent / limit * 100
		}

		usage = append(usage, analytics.BudgetUsage{
			Category:    category,
			Limit:       limit,
			Spent:       spent,
			Remaining:   limit - spent,
			PercentUsed: percentUsed,
		})
	}

	sort.Slice(usage, func(i, j int) bool {
		return usage[i].Category < usage[j].Category
	})

	return usage
}
