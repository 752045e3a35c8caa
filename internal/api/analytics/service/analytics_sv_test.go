package analyticsService

import (
	"BudgetBuddy/internal/api/analytics"
	"BudgetBuddy/internal/entity"
	"context"
	"errors"
	"io"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeExpenseClient struct {
	expenses []entity.Expense
	err      error
}

func (f *fakeExpenseClient) GetExpenses(ctx context.Context, token string) ([]entity.Expense, error) {
	return f.expenses, f.err
}

type fakeBudgetClient struct {
	budgets []entity.Budget
	err     error
}

func (f *fakeBudgetClient) GetBudgets(ctx context.Context, token string) ([]entity.Budget, error) {
	return f.budgets, f.err
}

type fakeIncomeClient struct {
	total float64
	err   error
}

func (f *fakeIncomeClient) GetTotalIncome(ctx context.Context, token string) (float64, error) {
	return f.total, f.err
}

func newTestService(e *fakeExpenseClient, b *fakeBudgetClient, i *fakeIncomeClient) IAnalyticsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAnalyticsService(logger, e, b, i)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGetUserAnalyticsMonthSummary(t *testing.T) {
	svc := newTestService(
		&fakeExpenseClient{expenses: []entity.Expense{
			{Category: "Food", Amount: 50, Date: mustDate(t, "2025-07-10")},
			{Category: "Travel", Amount: 20, Date: mustDate(t, "2025-07-15")},
			{Category: "Food", Amount: 999, Date: mustDate(t, "2025-06-05")},
		}},
		&fakeBudgetClient{budgets: []entity.Budget{
			{Category: "Food", LimitAmount: 100, MonthYear: "2025-07"},
			{Category: "Travel", LimitAmount: 30, MonthYear: "2025-07"},
			{Category: "Food", LimitAmount: 500, MonthYear: "2025-06"},
		}},
		&fakeIncomeClient{total: 200},
	)

	summary, err := svc.GetUserAnalytics(context.Background(), "user-1", "token", "2025-07")
	if err != nil {
		t.Fatalf("GetUserAnalytics: %v", err)
	}

	if !almostEqual(summary.TotalIncome, 200) {
		t.Errorf("TotalIncome = %v, want 200", summary.TotalIncome)
	}
	if !almostEqual(summary.TotalExpenses, 70) {
		t.Errorf("TotalExpenses = %v, want 70", summary.TotalExpenses)
	}
	if !almostEqual(summary.NetSavings, 130) {
		t.Errorf("NetSavings = %v, want 130", summary.NetSavings)
	}

	if len(summary.BudgetUsage) != 2 {
		t.Fatalf("BudgetUsage has %d rows, want 2", len(summary.BudgetUsage))
	}

	food := summary.BudgetUsage[0]
	if food.Category != "Food" || !almostEqual(food.Spent, 50) || !almostEqual(food.Limit, 100) || !almostEqual(food.PercentUsed, 50) {
		t.Errorf("Food usage = %+v", food)
	}

	travel := summary.BudgetUsage[1]
	if travel.Category != "Travel" || !almostEqual(travel.Spent, 20) || !almostEqual(travel.Limit, 30) {
		t.Errorf("Travel usage = %+v", travel)
	}
	if !almostEqual(travel.PercentUsed, 20.0/30.0*100) {
		t.Errorf("Travel PercentUsed = %v, want %v", travel.PercentUsed, 20.0/30.0*100)
	}
}

func TestGetUserAnalyticsIncomeIgnoresMonthFilter(t *testing.T) {
	svc := newTestService(
		&fakeExpenseClient{},
		&fakeBudgetClient{},
		&fakeIncomeClient{total: 150},
	)

	summary, err := svc.GetUserAnalytics(context.Background(), "user-1", "token", "2025-07")
	if err != nil {
		t.Fatalf("GetUserAnalytics: %v", err)
	}

	if !almostEqual(summary.TotalIncome, 150) {
		t.Errorf("TotalIncome = %v, want 150 (income is never month-filtered)", summary.TotalIncome)
	}
}

func TestGetUserAnalyticsNoFilter(t *testing.T) {
	svc := newTestService(
		&fakeExpenseClient{expenses: []entity.Expense{
			{Category: "Food", Amount: 10, Date: mustDate(t, "2025-06-01")},
			{Category: "Food", Amount: 15, Date: mustDate(t, "2025-07-01")},
		}},
		&fakeBudgetClient{budgets: []entity.Budget{
			{Category: "Food", LimitAmount: 100, MonthYear: "2025-06"},
			{Category: "Food", LimitAmount: 200, MonthYear: "2025-07"},
		}},
		&fakeIncomeClient{},
	)

	summary, err := svc.GetUserAnalytics(context.Background(), "user-1", "token", "")
	if err != nil {
		t.Fatalf("GetUserAnalytics: %v", err)
	}

	if !almostEqual(summary.TotalExpenses, 25) {
		t.Errorf("TotalExpenses = %v, want 25", summary.TotalExpenses)
	}

	// Without a month filter, duplicate categories across months merge and
	// their limits sum.
	if len(summary.BudgetUsage) != 1 {
		t.Fatalf("BudgetUsage has %d rows, want 1", len(summary.BudgetUsage))
	}
	if !almostEqual(summary.BudgetUsage[0].Limit, 300) {
		t.Errorf("Limit = %v, want 300", summary.BudgetUsage[0].Limit)
	}
}

func TestGetUserAnalyticsInvalidMonth(t *testing.T) {
	svc := newTestService(&fakeExpenseClient{}, &fakeBudgetClient{}, &fakeIncomeClient{})

	for _, monthYear := range []string{"2025", "2025-13", "07-2025", "garbage"} {
		if _, err := svc.GetUserAnalytics(context.Background(), "user-1", "token", monthYear); !errors.Is(err, analytics.ErrInvalidMonthYear) {
			t.Errorf("monthYear %q: err = %v, want ErrInvalidMonthYear", monthYear, err)
		}
	}
}

func TestGetUserAnalyticsUpstreamFailure(t *testing.T) {
	svc := newTestService(
		&fakeExpenseClient{err: analytics.ErrUpstreamExpense},
		&fakeBudgetClient{},
		&fakeIncomeClient{},
	)

	if _, err := svc.GetUserAnalytics(context.Background(), "user-1", "token", ""); !errors.Is(err, analytics.ErrUpstreamExpense) {
		t.Errorf("err = %v, want ErrUpstreamExpense", err)
	}
}

func TestGetAvailableMonths(t *testing.T) {
	svc := newTestService(
		&fakeExpenseClient{},
		&fakeBudgetClient{budgets: []entity.Budget{
			{MonthYear: "2025-06"},
			{MonthYear: "2025-07"},
			{MonthYear: "2025-07"},
			{MonthYear: "2024-12"},
			{MonthYear: ""},
		}},
		&fakeIncomeClient{},
	)

	months, err := svc.GetAvailableMonths(context.Background(), "user-1", "token")
	if err != nil {
		t.Fatalf("GetAvailableMonths: %v", err)
	}

	want := []string{"2025-07", "2025-06", "2024-12"}
	if !reflect.DeepEqual(months, want) {
		t.Errorf("months = %v, want %v", months, want)
	}
}

func TestAggregateBudgetUsage(t *testing.T) {
	tests := []struct {
		name     string
		expenses []entity.Expense
		budgets  []entity.Budget
		want     []analytics.BudgetUsage
	}{
		{
			name: "zero limit yields zero percent",
			expenses: []entity.Expense{
				{Category: "Fun", Amount: 40},
			},
			budgets: []entity.Budget{
				{Category: "Fun", LimitAmount: 0},
			},
			want: []analytics.BudgetUsage{
				{Category: "Fun", Limit: 0, Spent: 40, Remaining: -40, PercentUsed: 0},
			},
		},
		{
			name: "overspend exceeds one hundred percent",
			expenses: []entity.Expense{
				{Category: "Food", Amount: 150},
			},
			budgets: []entity.Budget{
				{Category: "Food", LimitAmount: 100},
			},
			want: []analytics.BudgetUsage{
				{Category: "Food", Limit: 100, Spent: 150, Remaining: -50, PercentUsed: 150},
			},
		},
		{
			name: "unbudgeted spend is excluded",
			expenses: []entity.Expense{
				{Category: "Mystery", Amount: 10},
				{Category: "Food", Amount: 5},
			},
			budgets: []entity.Budget{
				{Category: "Food", LimitAmount: 10},
			},
			want: []analytics.BudgetUsage{
				{Category: "Food", Limit: 10, Spent: 5, Remaining: 5, PercentUsed: 50},
			},
		},
		{
			name:     "budget with no spend",
			expenses: nil,
			budgets: []entity.Budget{
				{Category: "Rent", LimitAmount: 800},
			},
			want: []analytics.BudgetUsage{
				{Category: "Rent", Limit: 800, Spent: 0, Remaining: 800, PercentUsed: 0},
			},
		},
		{
			name: "duplicate limits sum and output sorts by category",
			expenses: []entity.Expense{
				{Category: "B", Amount: 30},
			},
			budgets: []entity.Budget{
				{Category: "B", LimitAmount: 10},
				{Category: "A", LimitAmount: 5},
				{Category: "B", LimitAmount: 20},
			},
			want: []analytics.BudgetUsage{
				{Category: "A", Limit: 5, Spent: 0, Remaining: 5, PercentUsed: 0},
				{Category: "B", Limit: 30, Spent: 30, Remaining: 0, PercentUsed: 100},
			},
		},
		{
			name:     "no budgets no rows",
			expenses: []entity.Expense{{Category: "Food", Amount: 10}},
			budgets:  nil,
			want:     []analytics.BudgetUsage{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregateBudgetUsage(tt.expenses, tt.budgets)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("aggregateBudgetUsage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
