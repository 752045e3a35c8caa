package entity

import (
	"BudgetBuddy/internal/api/income"
	"time"
)

type Income struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Source    string    `json:"source"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Income) Validate() error {
	if i.Source == "" {
		return income.ErrInvalidIncome
	}

	if i.Amount <= 0 {
		return income.ErrInvalidAmount
	}

	if i.Date.IsZero() {
		return income.ErrInvalidDate
	}

	return nil
}
