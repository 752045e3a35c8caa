package budget

type CreateBudgetRequest struct {
	Category    string  `json:"category" validate:"required"`
	LimitAmount float64 `json:"limitAmount" validate:"gte=0"`
	MonthYear   string  `json:"monthYear" validate:"required,datetime=2006-01"`
}

type UpdateBudgetRequest struct {
	Category    string  `json:"category" validate:"required"`
	LimitAmount float64 `json:"limitAmount" validate:"gte=0"`
	MonthYear   string  `json:"monthYear" validate:"required,datetime=2006-01"`
}
