package analytics

// BudgetUsage is the derived, per-category view of limit vs actual spend.
// Remaining may go negative and PercentUsed may exceed 100; overspend is a
// signal, not an error.
type BudgetUsage struct {
	Category    string  `json:"category"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
}

type SummaryResponse struct {
	TotalIncome   float64       `json:"totalIncome"`
	TotalExpenses float64       `json:"totalExpenses"`
	NetSavings    float64       `json:"netSavings"`
	BudgetUsage   []BudgetUsage `json:"budgetUsage"`
}
