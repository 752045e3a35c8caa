package entity

import (
	"BudgetBuddy/internal/api/budget"
	"time"
)

// Budget caps spending for one (user, category, month) triple. MonthYear is a
// "2006-01" label; uniqueness per triple is enforced by the copy pre-check,
// not by a storage constraint.
type Budget struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Category    string    `json:"category"`
	LimitAmount float64   `json:"limitAmount"`
	MonthYear   string    `json:"monthYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b *Budget) Validate() error {
	if b.Category == "" {
		return budget.ErrInvalidCategory
	}

	if b.LimitAmount < 0 {
		return budget.ErrInvalidLimitAmount
	}

	if !IsValidMonthYear(b.MonthYear) {
		return budget.ErrInvalidMonthYear
	}

	return nil
}

func IsValidMonthYear(monthYear string) bool {
	if monthYear == "" {
		return false
	}
	_, err := time.Parse("2006-01", monthYear)
	return err == nil
}
