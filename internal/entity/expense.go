package entity

import (
	"BudgetBuddy/internal/api/expense"
	"strings"
	"time"
)

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	ReceiptLink string    `json:"receiptLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *Expense) Validate() error {
	if e.Description == "" {
		return expense.ErrInvalidExpense
	}

	if e.Amount <= 0 {
		return expense.ErrInvalidAmount
	}

	if e.Category == "" {
		return expense.ErrInvalidCategory
	}

	if e.Date.IsZero() {
		return expense.ErrInvalidDate
	}

	return nil
}

// InMonth reports whether the expense date falls inside the given
// YYYY-MM label, matched as a prefix of the RFC3339 date string.
func (e *Expense) InMonth(monthYear string) bool {
	if monthYear == "" {
		return true
	}
	return strings.HasPrefix(e.Date.UTC().Format(time.RFC3339), monthYear)
}
