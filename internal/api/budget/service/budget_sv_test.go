package budgetService

import (
	"BudgetBuddy/internal/api/budget"
	budgetRepository "BudgetBuddy/internal/api/budget/repository"
	"BudgetBuddy/internal/entity"
	"BudgetBuddy/pkg/amqp"
	"BudgetBuddy/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeBudgetStore struct {
	byMonth  map[string][]entity.Budget
	byID     map[string]entity.Budget
	inserted []entity.Budget
}

func (f *fakeBudgetStore) CreateBudgets(c context.Context, budgets []entity.Budget) error {
	f.inserted = append(f.inserted, budgets...)
	return nil
}

func (f *fakeBudgetStore) GetBudgetsByUserID(c context.Context, userID string) ([]entity.Budget, error) {
	var all []entity.Budget
	for _, budgets := range f.byMonth {
		all = append(all, budgets...)
	}
	return all, nil
}

func (f *fakeBudgetStore) GetBudgetsByUserIDAndMonth(c context.Context, userID string, monthYear string) ([]entity.Budget, error) {
	return f.byMonth[monthYear], nil
}

func (f *fakeBudgetStore) GetBudgetByCategoryAndMonth(c context.Context, userID string, category string, monthYear string) (entity.Budget, error) {
	for _, b := range f.byMonth[monthYear] {
		if b.Category == category {
			return b, nil
		}
	}
	return entity.Budget{}, budget.ErrBudgetNotFound
}

func (f *fakeBudgetStore) GetBudgetByID(c context.Context, id string) (entity.Budget, error) {
	b, ok := f.byID[id]
	if !ok {
		return entity.Budget{}, budget.ErrBudgetNotFound
	}
	return b, nil
}

func (f *fakeBudgetStore) UpdateBudget(c context.Context, b entity.Budget) error {
	if _, ok := f.byID[b.ID]; !ok {
		return budget.ErrBudgetNotFound
	}
	f.byID[b.ID] = b
	return nil
}

type fakeRepository struct {
	store      *fakeBudgetStore
	committed  bool
	rolledBack bool
}

func (f *fakeRepository) NewClient(tx bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budget: f.store,
		Commit: func() error {
			f.committed = true
			return nil
		},
		Rollback: func() error {
			if !f.committed {
				f.rolledBack = true
			}
			return nil
		},
	}, nil
}

type fakeEventBus struct {
	published []entity.ActivityEvent
}

func (f *fakeEventBus) PublishActivity(evt entity.ActivityEvent) {
	f.published = append(f.published, evt)
}

func (f *fakeEventBus) ConsumeActivity(ctx context.Context, handler func(entity.ActivityEvent) error) error {
	return nil
}

func (f *fakeEventBus) Close() error { return nil }

var _ amqp.IEventBus = (*fakeEventBus)(nil)

func newTestService(store *fakeBudgetStore) (IBudgetService, *fakeRepository, *fakeEventBus) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeRepository{store: store}
	events := &fakeEventBus{}
	svc := NewBudgetService(logger, repo, events, utils.New())
	return svc, repo, events
}

func TestAddBudgetsEmitsSingleBatchEvent(t *testing.T) {
	store := &fakeBudgetStore{byMonth: map[string][]entity.Budget{}}
	svc, _, events := newTestService(store)

	created, err := svc.AddBudgets(context.Background(), "user-1", []budget.CreateBudgetRequest{
		{Category: "Food", LimitAmount: 100, MonthYear: "2025-07"},
		{Category: "Travel", LimitAmount: 30, MonthYear: "2025-07"},
	})
	if err != nil {
		t.Fatalf("AddBudgets: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("created %d budgets, want 2", len(created))
	}
	if len(store.inserted) != 2 {
		t.Fatalf("inserted %d budgets, want 2", len(store.inserted))
	}

	if len(events.published) != 1 {
		t.Fatalf("published %d events, want exactly 1 batch event", len(events.published))
	}

	evt := events.published[0]
	if evt.Action != string(entity.ActionCreatedBatch) {
		t.Errorf("event action = %q, want CREATED_BATCH", evt.Action)
	}
	if evt.EntityType != string(entity.EntityTypeBudget) {
		t.Errorf("event entity type = %q, want BUDGET", evt.EntityType)
	}

	wantPrefix := fmt.Sprintf("%d budgets created. IDs: ", len(created))
	if !strings.HasPrefix(evt.EntityID, wantPrefix) {
		t.Errorf("event details = %q, want prefix %q", evt.EntityID, wantPrefix)
	}
	for _, b := range created {
		if !strings.Contains(evt.EntityID, b.ID) {
			t.Errorf("event details %q missing budget ID %s", evt.EntityID, b.ID)
		}
	}
}

func TestAddBudgetsRejectsInvalidMonth(t *testing.T) {
	store := &fakeBudgetStore{byMonth: map[string][]entity.Budget{}}
	svc, _, events := newTestService(store)

	_, err := svc.AddBudgets(context.Background(), "user-1", []budget.CreateBudgetRequest{
		{Category: "Food", LimitAmount: 100, MonthYear: "2025-13"},
	})
	if !errors.Is(err, budget.ErrInvalidMonthYear) {
		t.Fatalf("err = %v, want ErrInvalidMonthYear", err)
	}
	if len(store.inserted) != 0 {
		t.Errorf("inserted %d budgets, want none", len(store.inserted))
	}
	if len(events.published) != 0 {
		t.Errorf("published %d events, want none", len(events.published))
	}
}

func TestCopyBudgetsConflict(t *testing.T) {
	store := &fakeBudgetStore{byMonth: map[string][]entity.Budget{
		"2025-07": {{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 100, MonthYear: "2025-07"}},
		"2025-08": {{ID: "b2", UserID: "user-1", Category: "Rent", LimitAmount: 900, MonthYear: "2025-08"}},
	}}
	svc, repo, _ := newTestService(store)

	_, err := svc.CopyBudgets(context.Background(), "user-1", "2025-07", "2025-08")
	if !errors.Is(err, budget.ErrMonthNotEmpty) {
		t.Fatalf("err = %v, want ErrMonthNotEmpty", err)
	}
	if len(store.inserted) != 0 {
		t.Errorf("inserted %d budgets on conflict, want none", len(store.inserted))
	}
	if repo.committed {
		t.Error("transaction committed on conflict")
	}
	if !repo.rolledBack {
		t.Error("transaction not rolled back on conflict")
	}
}

func TestCopyBudgetsSuccess(t *testing.T) {
	source := []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 100, MonthYear: "2025-07"},
		{ID: "b2", UserID: "user-1", Category: "Travel", LimitAmount: 30, MonthYear: "2025-07"},
	}
	store := &fakeBudgetStore{byMonth: map[string][]entity.Budget{"2025-07": source}}
	svc, repo, _ := newTestService(store)

	copied, err := svc.CopyBudgets(context.Background(), "user-1", "2025-07", "2025-08")
	if err != nil {
		t.Fatalf("CopyBudgets: %v", err)
	}

	if len(copied) != 2 {
		t.Fatalf("copied %d budgets, want 2", len(copied))
	}
	if !repo.committed {
		t.Error("transaction not committed")
	}

	for i, b := range copied {
		if b.MonthYear != "2025-08" {
			t.Errorf("copied[%d].MonthYear = %q, want 2025-08", i, b.MonthYear)
		}
		if b.ID == source[i].ID || b.ID == "" {
			t.Errorf("copied[%d] kept the source ID %q", i, b.ID)
		}
		if b.Category != source[i].Category || b.LimitAmount != source[i].LimitAmount {
			t.Errorf("copied[%d] = %+v, want category/limit of %+v", i, b, source[i])
		}
	}
}

func TestCopyBudgetsEmptySource(t *testing.T) {
	store := &fakeBudgetStore{byMonth: map[string][]entity.Budget{}}
	svc, _, _ := newTestService(store)

	copied, err := svc.CopyBudgets(context.Background(), "user-1", "2025-01", "2025-02")
	if err != nil {
		t.Fatalf("CopyBudgets with empty source: %v", err)
	}
	if len(copied) != 0 {
		t.Errorf("copied %d budgets from empty month, want 0", len(copied))
	}
}

func TestCopyBudgetsInvalidMonths(t *testing.T) {
	store := &fakeBudgetStore{byMonth: map[string][]entity.Budget{}}
	svc, _, _ := newTestService(store)

	for _, months := range [][2]string{{"bad", "2025-02"}, {"2025-01", "bad"}} {
		if _, err := svc.CopyBudgets(context.Background(), "user-1", months[0], months[1]); !errors.Is(err, budget.ErrInvalidMonthYear) {
			t.Errorf("CopyBudgets(%q, %q) err = %v, want ErrInvalidMonthYear", months[0], months[1], err)
		}
	}
}

func TestUpdateBudgetOwnership(t *testing.T) {
	store := &fakeBudgetStore{
		byMonth: map[string][]entity.Budget{},
		byID: map[string]entity.Budget{
			"b1": {ID: "b1", UserID: "someone-else", Category: "Food", LimitAmount: 100, MonthYear: "2025-07"},
		},
	}
	svc, _, events := newTestService(store)

	_, err := svc.UpdateBudget(context.Background(), "user-1", "b1", budget.UpdateBudgetRequest{
		Category: "Food", LimitAmount: 120, MonthYear: "2025-07",
	})
	if !errors.Is(err, budget.ErrBudgetNotOwned) {
		t.Fatalf("err = %v, want ErrBudgetNotOwned", err)
	}
	if len(events.published) != 0 {
		t.Errorf("published %d events on rejected update, want none", len(events.published))
	}
}

func TestUpdateBudgetSuccess(t *testing.T) {
	store := &fakeBudgetStore{
		byMonth: map[string][]entity.Budget{},
		byID: map[string]entity.Budget{
			"b1": {ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 100, MonthYear: "2025-07"},
		},
	}
	svc, _, events := newTestService(store)

	updated, err := svc.UpdateBudget(context.Background(), "user-1", "b1", budget.UpdateBudgetRequest{
		Category: "Food", LimitAmount: 120, MonthYear: "2025-07",
	})
	if err != nil {
		t.Fatalf("UpdateBudget: %v", err)
	}
	if updated.LimitAmount != 120 {
		t.Errorf("LimitAmount = %v, want 120", updated.LimitAmount)
	}
	if len(events.published) != 1 || events.published[0].Action != string(entity.ActionUpdated) {
		t.Errorf("events = %+v, want one UPDATED event", events.published)
	}
}
