package analyticsClient

import (
	"BudgetBuddy/internal/api/analytics"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestExpenseClientForwardsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/expenses" {
			t.Errorf("path = %q, want /expenses", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`[{"id":"e1","userId":"u1","description":"Lunch","amount":12.5,"date":"2025-07-10T00:00:00Z","category":"Food","createdAt":"2025-07-10T00:00:00Z","updatedAt":"2025-07-10T00:00:00Z"}]`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	t.Setenv("EXPENSE_SERVICE_URL", srv.URL)

	client := NewExpenseClient(testLogger())
	expenses, err := client.GetExpenses(context.Background(), "the-token")
	if err != nil {
		t.Fatalf("GetExpenses: %v", err)
	}

	if gotAuth != "Bearer the-token" {
		t.Errorf("Authorization = %q, want Bearer the-token", gotAuth)
	}
	if len(expenses) != 1 || expenses[0].Category != "Food" || expenses[0].Amount != 12.5 {
		t.Errorf("expenses = %+v", expenses)
	}
}

func TestBudgetClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("BUDGET_SERVICE_URL", srv.URL)

	client := NewBudgetClient(testLogger())
	if _, err := client.GetBudgets(context.Background(), "token"); !errors.Is(err, analytics.ErrUpstreamBudget) {
		t.Errorf("err = %v, want ErrUpstreamBudget", err)
	}
}

func TestIncomeClientSumsAmounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/income" {
			t.Errorf("path = %q, want /income", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`[{"id":"i1","userId":"u1","source":"Salary","amount":200,"date":"2025-07-01T00:00:00Z","createdAt":"2025-07-01T00:00:00Z","updatedAt":"2025-07-01T00:00:00Z"},{"id":"i2","userId":"u1","source":"Bonus","amount":50,"date":"2025-07-15T00:00:00Z","createdAt":"2025-07-15T00:00:00Z","updatedAt":"2025-07-15T00:00:00Z"}]`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	t.Setenv("INCOME_SERVICE_URL", srv.URL)

	client := NewIncomeClient(testLogger())
	total, err := client.GetTotalIncome(context.Background(), "token")
	if err != nil {
		t.Fatalf("GetTotalIncome: %v", err)
	}
	if total != 250 {
		t.Errorf("total = %v, want 250", total)
	}
}

func TestClientConnectionRefused(t *testing.T) {
	t.Setenv("INCOME_SERVICE_URL", "http://127.0.0.1:1")

	client := NewIncomeClient(testLogger())
	if _, err := client.GetTotalIncome(context.Background(), "token"); !errors.Is(err, analytics.ErrUpstreamIncome) {
		t.Errorf("err = %v, want ErrUpstreamIncome", err)
	}
}
