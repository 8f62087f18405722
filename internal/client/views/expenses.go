package views

import (
	"context"
	"fmt"
	"sync"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

type (
	ExpensesPayload struct {
		Expenses []models.Expense
	}

	// ExpenseCategoryOptions and AccountOptions fill the selects of the
	// expense form. Both load steps are ignorable.
	ExpenseCategoryOptions struct {
		Categories []models.CategoryOption
	}
	AccountOptions struct {
		Accounts []models.Account
	}
)

// ExpenseFilter narrows the expense list. Zero-valued fields are not sent.
type ExpenseFilter struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
	Search    string
}

func (f ExpenseFilter) Params() map[string]string {
	params := map[string]string{}
	if f.Type != "" {
		params["type"] = f.Type
	}
	if f.Category != "" {
		params["category"] = f.Category
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

// ExpensesLoader populates the expenses view: the filtered list (fatal), then
// category and account options (ignorable).
type ExpensesLoader struct {
	gw  Gateway
	log logging.Logger

	mu     sync.Mutex
	filter ExpenseFilter
}

func NewExpensesLoader(gw Gateway, log logging.Logger) *ExpensesLoader {
	return &ExpensesLoader{gw: gw, log: log}
}

// SetFilter replaces the active filter; the next load applies it.
func (l *ExpensesLoader) SetFilter(f ExpenseFilter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f
}

func (l *ExpensesLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	l.mu.Lock()
	filter := l.filter
	l.mu.Unlock()

	raw, err := l.gw.Get(ctx, api.EndpointExpenses, filter.Params())
	if err != nil {
		return err
	}
	var list models.ExpenseList
	if err := api.DecodeInto(raw, &list); err != nil {
		return err
	}
	rc.Render(ExpensesPayload{Expenses: list.Expenses})

	if raw, err := l.gw.Get(ctx, api.EndpointExpenseCategories, nil); err != nil {
		l.log.Warn(ctx, "loading expense categories failed", "error", err)
	} else {
		var cats models.CategoryOptionList
		if err := api.DecodeInto(raw, &cats); err != nil {
			l.log.Warn(ctx, "decoding expense categories failed", "error", err)
		} else {
			rc.Render(ExpenseCategoryOptions{Categories: cats.Categories})
		}
	}

	if raw, err := l.gw.Get(ctx, api.EndpointAccounts, nil); err != nil {
		l.log.Warn(ctx, "loading account options failed", "error", err)
	} else {
		var accounts models.AccountList
		if err := api.DecodeInto(raw, &accounts); err != nil {
			l.log.Warn(ctx, "decoding account options failed", "error", err)
		} else {
			rc.Render(AccountOptions{Accounts: accounts.Accounts})
		}
	}

	return nil
}

// ExpenseManager carries the write operations of the expenses view.
type ExpenseManager struct {
	gw       Gateway
	notifier Notifier
	confirm  Confirm
	refresh  RefreshFunc
	log      logging.Logger
}

func NewExpenseManager(gw Gateway, notifier Notifier, confirm Confirm, refresh RefreshFunc, log logging.Logger) *ExpenseManager {
	return &ExpenseManager{gw: gw, notifier: notifier, confirm: confirm, refresh: refresh, log: log}
}

func (m *ExpenseManager) Create(ctx context.Context, form models.ExpenseForm) error {
	if form.AccountID == 0 {
		err := &ValidationError{Msg: "Please select an account"}
		m.notifier.Error(err.Msg)
		return err
	}
	if _, err := m.gw.Post(ctx, api.EndpointExpenses, form); err != nil {
		return err
	}
	m.notifier.Success("Record created")
	m.refresh(ctx)
	return nil
}

// Get fetches one record, used to prefill the edit form.
func (m *ExpenseManager) Get(ctx context.Context, id int64) (*models.Expense, error) {
	raw, err := m.gw.Get(ctx, api.ExpensePath(id), nil)
	if err != nil {
		return nil, err
	}
	var detail models.ExpenseDetail
	if err := api.DecodeInto(raw, &detail); err != nil {
		return nil, err
	}
	return detail.Expense, nil
}

func (m *ExpenseManager) Update(ctx context.Context, id int64, form models.ExpenseForm) error {
	if _, err := m.gw.Put(ctx, api.ExpensePath(id), form); err != nil {
		return err
	}
	m.notifier.Success("Record updated")
	m.refresh(ctx)
	return nil
}

// Delete asks for confirmation before issuing the request. Declining is a
// no-op with no network call.
func (m *ExpenseManager) Delete(ctx context.Context, id int64, description string) error {
	if description == "" {
		description = "this record"
	}
	if !m.confirm.Ask(fmt.Sprintf("Delete %s? This cannot be undone.", description)) {
		return nil
	}
	if _, err := m.gw.Delete(ctx, api.ExpensePath(id)); err != nil {
		return err
	}
	m.notifier.Success("Record deleted")
	m.refresh(ctx)
	return nil
}
