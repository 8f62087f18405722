package api

import "fmt"

// Endpoint catalog of the remote bookkeeping API. The server owns this
// contract; the client calls it by convention.
const (
	basePath = "/api"

	EndpointLogin          = basePath + "/auth/login"
	EndpointRegister       = basePath + "/auth/register"
	EndpointProfile        = basePath + "/auth/profile"
	EndpointChangePassword = basePath + "/auth/change-password"

	EndpointAccounts     = basePath + "/accounts/"
	EndpointAccountTypes = basePath + "/accounts/types"

	EndpointExpenses          = basePath + "/expenses/"
	EndpointExpenseCategories = basePath + "/expenses/categories"

	EndpointReimbursements    = basePath + "/reimbursements/"
	EndpointAvailableExpenses = basePath + "/reimbursements/available-expenses"

	EndpointCategories            = basePath + "/categories/"
	EndpointCategoriesInitDefault = basePath + "/categories/init-default"

	EndpointStatsOverview = basePath + "/statistics/overview"
	EndpointStatsCategory = basePath + "/statistics/category-analysis"
	EndpointStatsTrend    = basePath + "/statistics/trend-analysis"
	EndpointStatsAccount  = basePath + "/statistics/account-analysis"
	EndpointStatsMonthly  = basePath + "/statistics/monthly-summary"
)

func AccountPath(id int64) string {
	return fmt.Sprintf("%s%d", EndpointAccounts, id)
}

func ExpensePath(id int64) string {
	return fmt.Sprintf("%s%d", EndpointExpenses, id)
}

func ReimbursementPath(id int64) string {
	return fmt.Sprintf("%s%d", EndpointReimbursements, id)
}

func ReimbursementApprovePath(id int64) string {
	return fmt.Sprintf("%s%d/approve", EndpointReimbursements, id)
}

func CategoryPath(id int64) string {
	return fmt.Sprintf("%s%d", EndpointCategories, id)
}
