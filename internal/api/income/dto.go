package income

type CreateIncomeRequest struct {
	Source string  `json:"source" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateIncomeRequest struct {
	Source string  `json:"source" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
}
