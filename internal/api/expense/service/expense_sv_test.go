package expenseService

import (
	"BudgetBuddy/internal/api/expense"
	expenseRepository "BudgetBuddy/internal/api/expense/repository"
	"BudgetBuddy/internal/entity"
	"BudgetBuddy/pkg/utils"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeExpenseStore struct {
	byID       map[string]entity.Expense
	lastFilter expense.FilterExpensesQuery
	inserted   []entity.Expense
	deleted    []string
}

func (f *fakeExpenseStore) CreateExpense(c context.Context, e entity.Expense) error {
	f.inserted = append(f.inserted, e)
	return nil
}

func (f *fakeExpenseStore) GetExpenseByID(c context.Context, id string) (entity.Expense, error) {
	e, ok := f.byID[id]
	if !ok {
		return entity.Expense{}, expense.ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeExpenseStore) GetExpensesByUserID(c context.Context, userID string, filter expense.FilterExpensesQuery) ([]entity.Expense, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeExpenseStore) UpdateExpense(c context.Context, e entity.Expense) error {
	if _, ok := f.byID[e.ID]; !ok {
		return expense.ErrExpenseNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeExpenseStore) DeleteExpense(c context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return expense.ErrExpenseNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeExpenseRepository struct {
	store *fakeExpenseStore
}

func (f *fakeExpenseRepository) NewClient(tx bool) (expenseRepository.Client, error) {
	return expenseRepository.Client{
		Expense:  f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
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

type fakeS3 struct {
	uploaded []string
	deleted  []string
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	f.uploaded = append(f.uploaded, file.Filename)
	return "https://bucket.s3.amazonaws.com/" + file.Filename, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	return fileName + "?signed", nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	f.deleted = append(f.deleted, fileName)
	return nil
}

func newTestService(store *fakeExpenseStore) (IExpenseService, *fakeEventBus, *fakeS3) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	events := &fakeEventBus{}
	s3Client := &fakeS3{}
	svc := NewExpenseService(logger, &fakeExpenseRepository{store: store}, events, s3Client, utils.New())
	return svc, events, s3Client
}

func TestAddExpenseEmitsCreatedEvent(t *testing.T) {
	store := &fakeExpenseStore{byID: map[string]entity.Expense{}}
	svc, events, _ := newTestService(store)

	created, err := svc.AddExpense(context.Background(), "user-1", expense.CreateExpenseRequest{
		Description: "Groceries",
		Amount:      42.5,
		Date:        "2025-07-10",
		Category:    "Food",
	}, nil)
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	if created.ID == "" {
		t.Error("created expense has no ID")
	}
	if created.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", created.UserID)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d expenses, want 1", len(store.inserted))
	}

	if len(events.published) != 1 {
		t.Fatalf("published %d events, want 1", len(events.published))
	}
	evt := events.published[0]
	if evt.Action != string(entity.ActionCreated) || evt.EntityType != string(entity.EntityTypeExpense) || evt.EntityID != created.ID {
		t.Errorf("event = %+v", evt)
	}
}

func TestAddExpenseInvalidDate(t *testing.T) {
	store := &fakeExpenseStore{byID: map[string]entity.Expense{}}
	svc, events, _ := newTestService(store)

	_, err := svc.AddExpense(context.Background(), "user-1", expense.CreateExpenseRequest{
		Description: "Groceries",
		Amount:      10,
		Date:        "10-07-2025",
		Category:    "Food",
	}, nil)
	if !errors.Is(err, expense.ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
	if len(events.published) != 0 {
		t.Errorf("published %d events on failed create, want none", len(events.published))
	}
}

func TestGetExpensesFilterValidation(t *testing.T) {
	tests := []struct {
		name    string
		filter  expense.FilterExpensesQuery
		wantErr error
	}{
		{"no filter", expense.FilterExpensesQuery{}, nil},
		{"category only", expense.FilterExpensesQuery{Category: "Food"}, nil},
		{"valid range", expense.FilterExpensesQuery{StartDate: "2025-07-01", EndDate: "2025-07-31"}, nil},
		{"start only", expense.FilterExpensesQuery{StartDate: "2025-07-01"}, nil},
		{"end only", expense.FilterExpensesQuery{EndDate: "2025-07-31"}, nil},
		{"bad start", expense.FilterExpensesQuery{StartDate: "yesterday"}, expense.ErrInvalidDate},
		{"bad end", expense.FilterExpensesQuery{EndDate: "2025/07/31"}, expense.ErrInvalidDate},
		{"inverted range", expense.FilterExpensesQuery{StartDate: "2025-08-01", EndDate: "2025-07-01"}, expense.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeExpenseStore{byID: map[string]entity.Expense{}}
			svc, _, _ := newTestService(store)

			_, err := svc.GetExpensesByUser(context.Background(), "user-1", tt.filter)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				if store.lastFilter != tt.filter {
					t.Errorf("filter passed to repository = %+v, want %+v", store.lastFilter, tt.filter)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteExpenseOwnershipAndReceipt(t *testing.T) {
	store := &fakeExpenseStore{byID: map[string]entity.Expense{
		"e1": {ID: "e1", UserID: "user-1", Description: "Dinner", Amount: 20, Category: "Food",
			ReceiptLink: "https://bucket.s3.amazonaws.com/receipt.jpg"},
		"e2": {ID: "e2", UserID: "someone-else", Description: "Taxi", Amount: 9, Category: "Travel"},
	}}
	svc, events, s3Client := newTestService(store)

	if err := svc.DeleteExpense(context.Background(), "user-1", "e2"); !errors.Is(err, expense.ErrExpenseNotOwned) {
		t.Fatalf("deleting foreign expense: err = %v, want ErrExpenseNotOwned", err)
	}

	if err := svc.DeleteExpense(context.Background(), "user-1", "e1"); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}

	if len(store.deleted) != 1 || store.deleted[0] != "e1" {
		t.Errorf("deleted = %v, want [e1]", store.deleted)
	}
	if len(s3Client.deleted) != 1 || s3Client.deleted[0] != "receipt.jpg" {
		t.Errorf("s3 deleted = %v, want [receipt.jpg]", s3Client.deleted)
	}
	if len(events.published) != 1 || events.published[0].Action != string(entity.ActionDeleted) {
		t.Errorf("events = %+v, want one DELETED event", events.published)
	}
}

func TestUpdateExpenseNotFound(t *testing.T) {
	store := &fakeExpenseStore{byID: map[string]entity.Expense{}}
	svc, _, _ := newTestService(store)

	_, err := svc.UpdateExpense(context.Background(), "user-1", "missing", expense.UpdateExpenseRequest{
		Description: "x", Amount: 1, Date: "2025-07-01", Category: "Food",
	}, nil)
	if !errors.Is(err, expense.ErrExpenseNotFound) {
		t.Fatalf("err = %v, want ErrExpenseNotFound", err)
	}
}
