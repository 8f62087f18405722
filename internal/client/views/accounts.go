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
	AccountsPayload struct {
		Accounts []models.Account
		Stats    AccountStats
	}

	// AccountTypeOptions fills the account-type select. Its load step is
	// ignorable: a failure is logged, not surfaced.
	AccountTypeOptions struct {
		Types []models.CategoryOption
	}
)

// AccountStats are the header figures of the accounts view, derived
// client-side from the account list.
type AccountStats struct {
	TotalBalance float64
	Count        int
	ActiveCount  int
}

func ComputeAccountStats(accounts []models.Account) AccountStats {
	stats := AccountStats{Count: len(accounts)}
	for _, a := range accounts {
		stats.TotalBalance += a.Balance
		if a.IsActive {
			stats.ActiveCount++
		}
	}
	return stats
}

// AccountsLoader populates the accounts view: the account list with derived
// stats (fatal), then the account-type options (ignorable).
type AccountsLoader struct {
	gw  Gateway
	log logging.Logger
}

func NewAccountsLoader(gw Gateway, log logging.Logger) *AccountsLoader {
	return &AccountsLoader{gw: gw, log: log}
}

func (l *AccountsLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	raw, err := l.gw.Get(ctx, api.EndpointAccounts, nil)
	if err != nil {
		return err
	}
	var list models.AccountList
	if err := api.DecodeInto(raw, &list); err != nil {
		return err
	}
	rc.Render(AccountsPayload{Accounts: list.Accounts, Stats: ComputeAccountStats(list.Accounts)})

	if raw, err := l.gw.Get(ctx, api.EndpointAccountTypes, nil); err != nil {
		l.log.Warn(ctx, "loading account types failed", "error", err)
	} else {
		var types struct {
			Types []models.CategoryOption `json:"types"`
		}
		if err := api.DecodeInto(raw, &types); err != nil {
			l.log.Warn(ctx, "decoding account types failed", "error", err)
		} else {
			rc.Render(AccountTypeOptions{Types: types.Types})
		}
	}

	return nil
}

// AccountManager carries the write operations of the accounts view.
type AccountManager struct {
	gw       Gateway
	notifier Notifier
	confirm  Confirm
	refresh  RefreshFunc
	log      logging.Logger
}

func NewAccountManager(gw Gateway, notifier Notifier, confirm Confirm, refresh RefreshFunc, log logging.Logger) *AccountManager {
	return &AccountManager{gw: gw, notifier: notifier, confirm: confirm, refresh: refresh, log: log}
}

func (m *AccountManager) Create(ctx context.Context, form models.AccountForm) error {
	if _, err := m.gw.Post(ctx, api.EndpointAccounts, form); err != nil {
		return err
	}
	m.notifier.Success("Account created")
	m.refresh(ctx)
	return nil
}

// Get fetches one account, used to prefill the edit form.
func (m *AccountManager) Get(ctx context.Context, id int64) (*models.Account, error) {
	raw, err := m.gw.Get(ctx, api.AccountPath(id), nil)
	if err != nil {
		return nil, err
	}
	var detail models.AccountDetail
	if err := api.DecodeInto(raw, &detail); err != nil {
		return nil, err
	}
	return detail.Account, nil
}

func (m *AccountManager) Update(ctx context.Context, id int64, form models.AccountForm) error {
	if _, err := m.gw.Put(ctx, api.AccountPath(id), form); err != nil {
		return err
	}
	m.notifier.Success("Account updated")
	m.refresh(ctx)
	return nil
}

// Delete asks for confirmation before issuing the request. Declining is a
// no-op with no network call.
func (m *AccountManager) Delete(ctx context.Context, id int64, name string) error {
	if !m.confirm.Ask(fmt.Sprintf("Delete account %q? This cannot be undone.", name)) {
		return nil
	}
	if _, err := m.gw.Delete(ctx, api.AccountPath(id)); err != nil {
		return err
	}
	m.notifier.Success("Account deleted")
	m.refresh(ctx)
	return nil
}
