package ui

import (
	"fmt"
	"io"
	"sync"

	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/client/views"
)

// TerminalRenderer prints view payloads as plain text tables and cards. Load
// plans render concurrently, so writes are serialized.
type TerminalRenderer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

func (r *TerminalRenderer) Render(view nav.View, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch p := data.(type) {
	case nil:
		fmt.Fprintf(r.out, "\n== %s ==\n", view)

	case views.OverviewCards:
		o := p.Overview
		fmt.Fprintf(r.out, "\n== dashboard ==\n")
		fmt.Fprintf(r.out, "Balance %.2f | Income %.2f | Expenses %.2f | Net %.2f | %d transactions\n",
			o.TotalBalance, o.TotalIncome, o.TotalExpenses, o.NetIncome, o.TransactionCount)
		fmt.Fprintf(r.out, "Reimbursements: %d pending (%.2f), %d approved (%.2f), %d rejected (%.2f)\n",
			o.ReimbursementSummary.Pending.Count, o.ReimbursementSummary.Pending.Amount,
			o.ReimbursementSummary.Approved.Count, o.ReimbursementSummary.Approved.Amount,
			o.ReimbursementSummary.Rejected.Count, o.ReimbursementSummary.Rejected.Amount)
	case views.RecentTransactions:
		fmt.Fprintln(r.out, "Recent transactions:")
		r.expenseRows(p.Expenses)
	case views.CategoryBreakdown:
		fmt.Fprintf(r.out, "Spending by category since %s:\n", p.StartDate)
		for _, c := range p.Categories {
			fmt.Fprintf(r.out, "  %-20s %10.2f\n", models.CategoryLabel(c.Category), c.Amount)
		}

	case views.AccountsPayload:
		fmt.Fprintf(r.out, "\n== accounts ==\n")
		fmt.Fprintf(r.out, "%d accounts (%d active), total balance %.2f\n",
			p.Stats.Count, p.Stats.ActiveCount, p.Stats.TotalBalance)
		for _, a := range p.Accounts {
			fmt.Fprintf(r.out, "  #%-4d %-20s %-10s %10.2f\n", a.ID, a.Name, a.AccountType, a.Balance)
		}
	case views.AccountTypeOptions:
		r.options("Account types", p.Types)

	case views.ExpensesPayload:
		fmt.Fprintf(r.out, "\n== expenses ==\n")
		r.expenseRows(p.Expenses)
	case views.ExpenseCategoryOptions:
		r.options("Categories", p.Categories)
	case views.AccountOptions:
		fmt.Fprintln(r.out, "Accounts:")
		for _, a := range p.Accounts {
			fmt.Fprintf(r.out, "  #%-4d %s\n", a.ID, a.Name)
		}

	case views.ReimbursementsPayload:
		fmt.Fprintf(r.out, "\n== reimbursements ==\n")
		fmt.Fprintf(r.out, "Total %.2f | %d pending, %d approved, %d rejected\n",
			p.Stats.TotalAmount, p.Stats.Pending, p.Stats.Approved, p.Stats.Rejected)
		for _, rb := range p.Reimbursements {
			fmt.Fprintf(r.out, "  #%-4d %-30s %-10s %10.2f (%d expenses)\n",
				rb.ID, rb.Title, rb.Status, rb.TotalAmount, rb.ExpenseCount)
		}
	case views.AvailableExpenses:
		fmt.Fprintln(r.out, "Expenses available for reimbursement:")
		r.expenseRows(p.Expenses)

	case views.StatisticsOverview:
		fmt.Fprintf(r.out, "\n== statistics ==\n")
		fmt.Fprintf(r.out, "Income %.2f | Expenses %.2f | Net %.2f\n",
			p.Overview.TotalIncome, p.Overview.TotalExpenses, p.Overview.NetIncome)
	case views.StatisticsCategories:
		fmt.Fprintln(r.out, "By category:")
		for _, c := range p.Categories {
			fmt.Fprintf(r.out, "  %-20s %10.2f\n", models.CategoryLabel(c.Category), c.Amount)
		}
	case views.StatisticsTrend:
		fmt.Fprintln(r.out, "Trend:")
		for _, t := range p.Trend {
			fmt.Fprintf(r.out, "  %-10s income %10.2f  expense %10.2f\n", t.Period, t.Income, t.Expense)
		}
	case views.StatisticsAccounts:
		fmt.Fprintln(r.out, "By account:")
		for _, a := range p.Accounts {
			fmt.Fprintf(r.out, "  %-20s %10.2f\n", a.Name, a.Balance)
		}
	case views.StatisticsMonthly:
		s := p.Summary
		fmt.Fprintf(r.out, "Month %d-%02d:", s.Year, s.Month)
		if s.Summary != nil {
			fmt.Fprintf(r.out, " income %.2f, expenses %.2f, net %.2f",
				s.Summary.TotalIncome, s.Summary.TotalExpense, s.Summary.NetIncome)
		}
		fmt.Fprintln(r.out)

	case views.ProfilePayload:
		fmt.Fprintf(r.out, "\n== profile ==\n")
		if p.User != nil {
			fmt.Fprintf(r.out, "%s <%s>", p.User.Username, p.User.Email)
			if p.User.Name != "" {
				fmt.Fprintf(r.out, " (%s)", p.User.Name)
			}
			fmt.Fprintln(r.out)
		}
	case views.UsageStats:
		fmt.Fprintf(r.out, "%d accounts, %d transactions, %d reimbursement requests\n",
			p.AccountCount, p.TransactionCount, p.ReimbursementCount)

	case views.CategoriesPayload:
		fmt.Fprintf(r.out, "\n== categories ==\n")
		for _, c := range p.Categories {
			active := " "
			if c.IsActive {
				active = "*"
			}
			fmt.Fprintf(r.out, "  #%-4d %s %-20s %-20s %s\n", c.ID, active, c.Value, c.Label, c.CategoryType)
		}

	default:
		fmt.Fprintf(r.out, "%s: %+v\n", view, data)
	}
}

func (r *TerminalRenderer) expenseRows(expenses []models.Expense) {
	for _, e := range expenses {
		sign := "-"
		if e.ExpenseType == "income" {
			sign = "+"
		}
		fmt.Fprintf(r.out, "  #%-4d %s %s%9.2f  %-15s %s\n",
			e.ID, e.ExpenseDate, sign, e.Amount, models.CategoryLabel(e.Category), e.Description)
	}
}

func (r *TerminalRenderer) options(title string, opts []models.CategoryOption) {
	fmt.Fprintf(r.out, "%s:", title)
	for i, o := range opts {
		if i > 0 {
			fmt.Fprint(r.out, ",")
		}
		fmt.Fprintf(r.out, " %s", o.Value)
	}
	fmt.Fprintln(r.out)
}
