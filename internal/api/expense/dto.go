package expense

type CreateExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required"`
}

type UpdateExpenseRequest struct {
	Description   string  `json:"description" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category      string  `json:"category" validate:"required"`
	DeleteReceipt bool    `json:"delete_receipt"`
}

// FilterExpensesQuery mirrors the expense listing decision table: every
// combination of category, startDate and endDate is a distinct query shape.
type FilterExpensesQuery struct {
	Category  string
	StartDate string
	EndDate   string
}
