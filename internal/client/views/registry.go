package views

import (
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

// Registry bundles the loaders of all authenticated views. The loaders are
// kept addressable so filter state (expenses, reimbursements) survives
// between navigations.
type Registry struct {
	Dashboard      *DashboardLoader
	Accounts       *AccountsLoader
	Expenses       *ExpensesLoader
	Reimbursements *ReimbursementsLoader
	Statistics     *StatisticsLoader
	Profile        *ProfileLoader
	Categories     *CategoriesLoader
}

func NewRegistry(gw Gateway, log logging.Logger) *Registry {
	return &Registry{
		Dashboard:      NewDashboardLoader(gw, log),
		Accounts:       NewAccountsLoader(gw, log),
		Expenses:       NewExpensesLoader(gw, log),
		Reimbursements: NewReimbursementsLoader(gw, log),
		Statistics:     NewStatisticsLoader(gw, log),
		Profile:        NewProfileLoader(gw, log),
		Categories:     NewCategoriesLoader(gw, log),
	}
}

// Loaders returns the navigator's dispatch table.
func (r *Registry) Loaders() map[nav.View]nav.Loader {
	return map[nav.View]nav.Loader{
		nav.ViewDashboard:      r.Dashboard,
		nav.ViewAccounts:       r.Accounts,
		nav.ViewExpenses:       r.Expenses,
		nav.ViewReimbursements: r.Reimbursements,
		nav.ViewStatistics:     r.Statistics,
		nav.ViewProfile:        r.Profile,
		nav.ViewCategories:     r.Categories,
	}
}
