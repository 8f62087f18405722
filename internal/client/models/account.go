package models

type Account struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

type AccountList struct {
	Accounts []Account `json:"accounts"`
}

// AccountDetail wraps a single account as returned by GET /api/accounts/{id}.
type AccountDetail struct {
	Account *Account `json:"account"`
}

// AccountForm carries the fields submitted when creating or updating an account.
type AccountForm struct {
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Description string  `json:"description,omitempty"`
}
