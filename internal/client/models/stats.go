package models

// Overview is the body of GET /api/statistics/overview.
type Overview struct {
	TotalBalance         float64              `json:"total_balance"`
	TotalIncome          float64              `json:"total_income"`
	TotalExpenses        float64              `json:"total_expenses"`
	NetIncome            float64              `json:"net_income"`
	TransactionCount     int                  `json:"transaction_count"`
	ReimbursementSummary ReimbursementSummary `json:"reimbursement_summary"`
}

type ReimbursementSummary struct {
	Pending  StatusCount `json:"pending"`
	Approved StatusCount `json:"approved"`
	Rejected StatusCount `json:"rejected"`
}

type StatusCount struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// CategoryAmount is one slice of the category-analysis breakdown.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type CategoryAnalysis struct {
	Categories []CategoryAmount `json:"categories"`
}

// TrendPoint is one period of the trend-analysis series.
type TrendPoint struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type TrendAnalysis struct {
	Trend []TrendPoint `json:"trend"`
}

// AccountBalance is one entry of the account-analysis ranking.
type AccountBalance struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type AccountAnalysis struct {
	Accounts []AccountBalance `json:"accounts"`
}

// MonthlySummary is the body of GET /api/statistics/monthly-summary.
type MonthlySummary struct {
	Year    int          `json:"year"`
	Month   int          `json:"month"`
	Summary *MonthTotals `json:"summary"`
}

type MonthTotals struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetIncome    float64 `json:"net_income"`
}
