package nav

// View is one navigable screen of the application. Exactly one is current at
// a time.
type View string

const (
	ViewLogin          View = "login"
	ViewRegister       View = "register"
	ViewDashboard      View = "dashboard"
	ViewAccounts       View = "accounts"
	ViewExpenses       View = "expenses"
	ViewReimbursements View = "reimbursements"
	ViewStatistics     View = "statistics"
	ViewProfile        View = "profile"
	ViewCategories     View = "categories"
)

// Access is the gate a view requires.
type Access int

const (
	// Public views are reachable without a session.
	Public Access = iota
	// Authenticated views require an active session.
	Authenticated
)

var policy = map[View]Access{
	ViewLogin:          Public,
	ViewRegister:       Public,
	ViewDashboard:      Authenticated,
	ViewAccounts:       Authenticated,
	ViewExpenses:       Authenticated,
	ViewReimbursements: Authenticated,
	ViewStatistics:     Authenticated,
	ViewProfile:        Authenticated,
	ViewCategories:     Authenticated,
}

// Policy returns the access gate of v, and false when v is not a known view.
func Policy(v View) (Access, bool) {
	a, ok := policy[v]
	return a, ok
}

// Views returns the full view set.
func Views() []View {
	return []View{
		ViewLogin, ViewRegister, ViewDashboard, ViewAccounts, ViewExpenses,
		ViewReimbursements, ViewStatistics, ViewProfile, ViewCategories,
	}
}
