package models

type Expense struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"user_id"`
	AccountID       int64    `json:"account_id"`
	Amount          float64  `json:"amount"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Description     string   `json:"description"`
	ExpenseDate     string   `json:"expense_date"`
	ExpenseType     string   `json:"expense_type"` // "expense" or "income"
	Tags            []string `json:"tags"`
	IsReimbursable  bool     `json:"is_reimbursable"`
	ReimbursementID *int64   `json:"reimbursement_id"`
	CreatedAt       string   `json:"created_at"`
}

type ExpenseList struct {
	Expenses []Expense `json:"expenses"`
}

// ExpenseDetail wraps a single record as returned by GET /api/expenses/{id}.
type ExpenseDetail struct {
	Expense *Expense `json:"expense"`
}

// ExpenseForm carries the fields submitted when creating or updating a record.
type ExpenseForm struct {
	AccountID      int64   `json:"account_id"`
	Amount         float64 `json:"amount"`
	Category       string  `json:"category"`
	Description    string  `json:"description,omitempty"`
	ExpenseDate    string  `json:"expense_date"`
	ExpenseType    string  `json:"expense_type"`
	IsReimbursable bool    `json:"is_reimbursable,omitempty"`
}

// CategoryOption is one entry of GET /api/expenses/categories, used to fill
// category selects.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CategoryOptionList struct {
	Categories []CategoryOption `json:"categories"`
}
