package views

import (
	"context"
	"fmt"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

type (
	ReimbursementsPayload struct {
		Reimbursements []models.Reimbursement
		Stats          ReimbursementStats
	}

	// AvailableExpenses fills the expense select of the reimbursement form.
	// Its load step is ignorable.
	AvailableExpenses struct {
		Expenses []models.Expense
	}
)

// ReimbursementStats are the header figures of the reimbursements view,
// derived client-side from the list.
type ReimbursementStats struct {
	TotalAmount float64
	Pending     int
	Approved    int
	Rejected    int
}

func ComputeReimbursementStats(items []models.Reimbursement) ReimbursementStats {
	var stats ReimbursementStats
	for _, r := range items {
		stats.TotalAmount += r.TotalAmount
		switch r.Status {
		case models.ReimbursementPending:
			stats.Pending++
		case models.ReimbursementApproved:
			stats.Approved++
		case models.ReimbursementRejected:
			stats.Rejected++
		}
	}
	return stats
}

// ReimbursementFilter narrows the reimbursement list. Zero-valued fields are
// not sent.
type ReimbursementFilter struct {
	Status    string
	StartDate string
	EndDate   string
	Search    string
}

func (f ReimbursementFilter) Params() map[string]string {
	params := map[string]string{}
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.StartDate != "" {
		params["start_date"] = f.StartDate
	}
	if f.EndDate != "" {
		params["end_date"] = f.EndDate
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	return params
}

// ReimbursementsLoader populates the reimbursements view: the filtered list
// with derived stats (fatal), then the available-for-reimbursement expenses
// (ignorable).
type ReimbursementsLoader struct {
	gw     Gateway
	log    logging.Logger
	filter ReimbursementFilter
}

func NewReimbursementsLoader(gw Gateway, log logging.Logger) *ReimbursementsLoader {
	return &ReimbursementsLoader{gw: gw, log: log}
}

func (l *ReimbursementsLoader) SetFilter(f ReimbursementFilter) {
	l.filter = f
}

func (l *ReimbursementsLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	raw, err := l.gw.Get(ctx, api.EndpointReimbursements, l.filter.Params())
	if err != nil {
		return err
	}
	var list models.ReimbursementList
	if err := api.DecodeInto(raw, &list); err != nil {
		return err
	}
	rc.Render(ReimbursementsPayload{
		Reimbursements: list.Reimbursements,
		Stats:          ComputeReimbursementStats(list.Reimbursements),
	})

	if raw, err := l.gw.Get(ctx, api.EndpointAvailableExpenses, nil); err != nil {
		l.log.Warn(ctx, "loading available expenses failed", "error", err)
	} else {
		var avail models.ExpenseList
		if err := api.DecodeInto(raw, &avail); err != nil {
			l.log.Warn(ctx, "decoding available expenses failed", "error", err)
		} else {
			rc.Render(AvailableExpenses{Expenses: avail.Expenses})
		}
	}

	return nil
}

// ReimbursementManager carries the write operations of the reimbursements view.
type ReimbursementManager struct {
	gw       Gateway
	notifier Notifier
	confirm  Confirm
	refresh  RefreshFunc
	log      logging.Logger
}

func NewReimbursementManager(gw Gateway, notifier Notifier, confirm Confirm, refresh RefreshFunc, log logging.Logger) *ReimbursementManager {
	return &ReimbursementManager{gw: gw, notifier: notifier, confirm: confirm, refresh: refresh, log: log}
}

// Create submits a reimbursement request. The server requires at least one
// expense, so an empty selection fails client-side before any call is made.
func (m *ReimbursementManager) Create(ctx context.Context, form models.ReimbursementForm) error {
	if len(form.ExpenseIDs) == 0 {
		err := &ValidationError{Msg: "Please select at least one expense"}
		m.notifier.Error(err.Msg)
		return err
	}
	if _, err := m.gw.Post(ctx, api.EndpointReimbursements, form); err != nil {
		return err
	}
	m.notifier.Success("Reimbursement request submitted")
	m.refresh(ctx)
	return nil
}

// Get fetches one request, used to prefill the edit form.
func (m *ReimbursementManager) Get(ctx context.Context, id int64) (*models.Reimbursement, error) {
	raw, err := m.gw.Get(ctx, api.ReimbursementPath(id), nil)
	if err != nil {
		return nil, err
	}
	var detail models.ReimbursementDetail
	if err := api.DecodeInto(raw, &detail); err != nil {
		return nil, err
	}
	return detail.Reimbursement, nil
}

func (m *ReimbursementManager) Update(ctx context.Context, id int64, form models.ReimbursementForm) error {
	if _, err := m.gw.Put(ctx, api.ReimbursementPath(id), form); err != nil {
		return err
	}
	m.notifier.Success("Reimbursement request updated")
	m.refresh(ctx)
	return nil
}

// SetStatus approves or rejects a pending request.
func (m *ReimbursementManager) SetStatus(ctx context.Context, id int64, approve bool) error {
	action := "reject"
	if approve {
		action = "approve"
	}
	if _, err := m.gw.Post(ctx, api.ReimbursementApprovePath(id), map[string]string{"action": action}); err != nil {
		return err
	}
	if approve {
		m.notifier.Success("Reimbursement request approved")
	} else {
		m.notifier.Success("Reimbursement request rejected")
	}
	m.refresh(ctx)
	return nil
}

// Delete asks for confirmation before issuing the request. Declining is a
// no-op with no network call.
func (m *ReimbursementManager) Delete(ctx context.Context, id int64, title string) error {
	if !m.confirm.Ask(fmt.Sprintf("Delete reimbursement request %q? This cannot be undone.", title)) {
		return nil
	}
	if _, err := m.gw.Delete(ctx, api.ReimbursementPath(id)); err != nil {
		return err
	}
	m.notifier.Success("Reimbursement request deleted")
	m.refresh(ctx)
	return nil
}
