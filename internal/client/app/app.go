// Package app assembles the client: it wires the session store, the request
// gateway, the navigator and the per-view managers together, and carries the
// authentication entry points.
package app

import (
	"context"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/config"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/client/session"
	"bookkeeper/internal/client/views"
	"bookkeeper/internal/logging"
)

// Options carry the external capability surfaces the application core depends
// on. Terminal implementations live in the ui package; tests pass fakes.
type Options struct {
	Config   *config.Config
	Renderer nav.Renderer
	Notifier views.Notifier
	Confirm  views.Confirm
	Log      logging.Logger
}

type App struct {
	cfg      *config.Config
	log      logging.Logger
	store    *session.Store
	client   *api.Client
	nav      *nav.Navigator
	registry *views.Registry
	notifier views.Notifier

	Accounts       *views.AccountManager
	Expenses       *views.ExpenseManager
	Reimbursements *views.ReimbursementManager
	Categories     *views.CategoryManager
	Profile        *views.ProfileManager
}

func New(opts Options) (*App, error) {
	store := session.NewStore(opts.Config.SessionFile)
	client := api.NewClient(opts.Config.APIBaseURL, opts.Config.RequestTimeout, store, opts.Notifier, opts.Log)
	registry := views.NewRegistry(client, opts.Log)

	navigator, err := nav.New(store, opts.Renderer, opts.Notifier, registry.Loaders(), opts.Log)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      opts.Config,
		log:      opts.Log,
		store:    store,
		client:   client,
		nav:      navigator,
		registry: registry,
		notifier: opts.Notifier,
	}

	// An expired session ends wherever a call happens to be in flight, so
	// the hook runs on its own context.
	client.OnSessionExpired(func() {
		if err := store.Clear(); err != nil {
			opts.Log.Warn(context.Background(), "clearing expired session failed", "error", err)
		}
		navigator.GoTo(context.Background(), nav.ViewLogin)
	})

	refresh := func(v nav.View) views.RefreshFunc {
		return func(ctx context.Context) { navigator.GoTo(ctx, v) }
	}
	a.Accounts = views.NewAccountManager(client, opts.Notifier, opts.Confirm, refresh(nav.ViewAccounts), opts.Log)
	a.Expenses = views.NewExpenseManager(client, opts.Notifier, opts.Confirm, refresh(nav.ViewExpenses), opts.Log)
	a.Reimbursements = views.NewReimbursementManager(client, opts.Notifier, opts.Confirm, refresh(nav.ViewReimbursements), opts.Log)
	a.Categories = views.NewCategoryManager(client, opts.Notifier, opts.Confirm, refresh(nav.ViewCategories), opts.Log)
	a.Profile = views.NewProfileManager(client, opts.Notifier, refresh(nav.ViewProfile), opts.Log)

	return a, nil
}

// GoTo exposes navigation to the command loop.
func (a *App) GoTo(ctx context.Context, v nav.View) nav.View {
	return a.nav.GoTo(ctx, v)
}

// CurrentView returns the active view.
func (a *App) CurrentView() nav.View {
	return a.nav.Current()
}

// Refresh re-runs the load plan of the active view.
func (a *App) Refresh(ctx context.Context) {
	a.nav.GoTo(ctx, a.nav.Current())
}

// IsLoggedIn reports whether a session is active.
func (a *App) IsLoggedIn() bool {
	return a.store.Token() != ""
}

// Username returns the name of the logged-in user, or "".
func (a *App) Username() string {
	if sess := a.store.Current(); sess != nil && sess.User != nil {
		return sess.User.Username
	}
	return ""
}

// ExpenseFilter forwards a filter to the expenses loader and refreshes the
// view when it is active.
func (a *App) ExpenseFilter(ctx context.Context, f views.ExpenseFilter) {
	a.registry.Expenses.SetFilter(f)
	if a.nav.Current() == nav.ViewExpenses {
		a.nav.GoTo(ctx, nav.ViewExpenses)
	}
}

// ReimbursementFilter forwards a filter to the reimbursements loader and
// refreshes the view when it is active.
func (a *App) ReimbursementFilter(ctx context.Context, f views.ReimbursementFilter) {
	a.registry.Reimbursements.SetFilter(f)
	if a.nav.Current() == nav.ViewReimbursements {
		a.nav.GoTo(ctx, nav.ViewReimbursements)
	}
}
