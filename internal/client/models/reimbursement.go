package models

const (
	ReimbursementPending  = "pending"
	ReimbursementApproved = "approved"
	ReimbursementRejected = "rejected"
)

type Reimbursement struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"` // pending, approved, rejected, paid
	SubmitDate    string  `json:"submit_date"`
	ApproveDate   string  `json:"approve_date"`
	ApproverNotes string  `json:"approver_notes"`
	ExpenseCount  int     `json:"expense_count"`
	CreatedAt     string  `json:"created_at"`
}

type ReimbursementList struct {
	Reimbursements []Reimbursement `json:"reimbursements"`
}

// ReimbursementDetail wraps a single request as returned by
// GET /api/reimbursements/{id}.
type ReimbursementDetail struct {
	Reimbursement *Reimbursement `json:"reimbursement"`
}

// ReimbursementForm carries the fields submitted when creating or updating a
// reimbursement request.
type ReimbursementForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ExpenseIDs  []int64 `json:"expense_ids,omitempty"`
}
