package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/client/ui"
	"bookkeeper/internal/client/views"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = ui.GetSimpleText
var getPassword = ui.GetPassword

// Commands builds the REPL command table. Prompted input is read from in and
// prompts are written to out.
func (a *App) Commands(in *bufio.Reader, out io.Writer) ([]ui.Command, error) {
	ctxless := func(fn func(ctx context.Context)) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			fn(ctx)
			return nil
		}
	}

	commands := []ui.Command{
		{Name: "login", Help: "sign in", Run: func(ctx context.Context) error {
			username, err := getSimpleText(in, "Username", out)
			if err != nil {
				return err
			}
			password, err := getPassword("Password", out)
			if err != nil {
				return err
			}
			return a.Login(ctx, username, password)
		}},
		{Name: "register", Help: "create an account", Run: func(ctx context.Context) error {
			username, err := getSimpleText(in, "Username", out)
			if err != nil {
				return err
			}
			email, err := getSimpleText(in, "Email", out)
			if err != nil {
				return err
			}
			password, err := getPassword("Password", out)
			if err != nil {
				return err
			}
			confirm, err := getPassword("Confirm password", out)
			if err != nil {
				return err
			}
			return a.Register(ctx, username, email, password, confirm)
		}},
		{Name: "logout", Help: "sign out", Run: a.Logout},
		{Name: "refresh", Help: "reload the current view", Run: ctxless(a.Refresh)},

		{Name: "addaccount", Help: "create an account record", Run: func(ctx context.Context) error {
			form, err := a.promptAccountForm(in, out)
			if err != nil {
				return err
			}
			return a.Accounts.Create(ctx, form)
		}},
		{Name: "delaccount", Help: "delete an account record", Run: func(ctx context.Context) error {
			id, name, err := promptTarget(in, out, "Account")
			if err != nil {
				return err
			}
			return a.Accounts.Delete(ctx, id, name)
		}},

		{Name: "addexpense", Help: "record an expense or income", Run: func(ctx context.Context) error {
			form, err := a.promptExpenseForm(in, out)
			if err != nil {
				return err
			}
			return a.Expenses.Create(ctx, form)
		}},
		{Name: "delexpense", Help: "delete a transaction", Run: func(ctx context.Context) error {
			id, desc, err := promptTarget(in, out, "Transaction")
			if err != nil {
				return err
			}
			return a.Expenses.Delete(ctx, id, desc)
		}},
		{Name: "filter", Help: "filter the expense list", Run: func(ctx context.Context) error {
			f, err := promptExpenseFilter(in, out)
			if err != nil {
				return err
			}
			a.ExpenseFilter(ctx, f)
			return nil
		}},

		{Name: "filterreimb", Help: "filter the reimbursement list", Run: func(ctx context.Context) error {
			f, err := promptReimbursementFilter(in, out)
			if err != nil {
				return err
			}
			a.ReimbursementFilter(ctx, f)
			return nil
		}},

		{Name: "addreimb", Help: "submit a reimbursement request", Run: func(ctx context.Context) error {
			form, err := promptReimbursementForm(in, out)
			if err != nil {
				return err
			}
			return a.Reimbursements.Create(ctx, form)
		}},
		{Name: "reimburse", Help: "request reimbursement for one expense", Run: func(ctx context.Context) error {
			id, err := promptID(in, out, "Expense id")
			if err != nil {
				return err
			}
			title, err := getSimpleText(in, "Title", out)
			if err != nil {
				return err
			}
			return a.Reimbursements.Create(ctx, models.ReimbursementForm{Title: title, ExpenseIDs: []int64{id}})
		}},
		{Name: "delreimb", Help: "delete a reimbursement request", Run: func(ctx context.Context) error {
			id, title, err := promptTarget(in, out, "Request")
			if err != nil {
				return err
			}
			return a.Reimbursements.Delete(ctx, id, title)
		}},
		{Name: "approve", Help: "approve a reimbursement request", Run: func(ctx context.Context) error {
			id, err := promptID(in, out, "Request id")
			if err != nil {
				return err
			}
			return a.Reimbursements.SetStatus(ctx, id, true)
		}},
		{Name: "reject", Help: "reject a reimbursement request", Run: func(ctx context.Context) error {
			id, err := promptID(in, out, "Request id")
			if err != nil {
				return err
			}
			return a.Reimbursements.SetStatus(ctx, id, false)
		}},

		{Name: "addcategory", Help: "create a category", Run: func(ctx context.Context) error {
			form, err := promptCategoryForm(in, out)
			if err != nil {
				return err
			}
			return a.Categories.Create(ctx, form)
		}},
		{Name: "delcategory", Help: "delete a category", Run: func(ctx context.Context) error {
			id, label, err := promptTarget(in, out, "Category")
			if err != nil {
				return err
			}
			return a.Categories.Delete(ctx, id, label)
		}},
		{Name: "initcats", Help: "initialize the default category set", Run: a.Categories.InitDefaults},

		{Name: "editprofile", Help: "update display name and email", Run: func(ctx context.Context) error {
			name, err := getSimpleText(in, "Display name", out)
			if err != nil {
				return err
			}
			email, err := getSimpleText(in, "Email", out)
			if err != nil {
				return err
			}
			return a.Profile.Update(ctx, name, email)
		}},
		{Name: "passwd", Help: "change the password", Run: func(ctx context.Context) error {
			oldPw, err := getPassword("Current password", out)
			if err != nil {
				return err
			}
			newPw, err := getPassword("New password", out)
			if err != nil {
				return err
			}
			confirm, err := getPassword("Confirm new password", out)
			if err != nil {
				return err
			}
			return a.Profile.ChangePassword(ctx, oldPw, newPw, confirm)
		}},
	}

	for _, v := range nav.Views() {
		if access, _ := nav.Policy(v); access != nav.Authenticated {
			continue
		}
		view := v
		commands = append(commands, ui.Command{
			Name: string(view),
			Help: fmt.Sprintf("open the %s view", view),
			Run: func(ctx context.Context) error {
				a.nav.GoTo(ctx, view)
				return nil
			},
		})
	}

	if err := validateCommands(commands); err != nil {
		return nil, err
	}
	return commands, nil
}

// validateCommands checks the table once at startup: unique names, no clash
// with the loop's built-ins, and a navigation command for every authenticated
// view.
func validateCommands(commands []ui.Command) error {
	seen := map[string]bool{"help": true, "exit": true, "quit": true}
	for _, c := range commands {
		if seen[c.Name] {
			return fmt.Errorf("duplicate command %q", c.Name)
		}
		if c.Run == nil {
			return fmt.Errorf("command %q has no handler", c.Name)
		}
		seen[c.Name] = true
	}
	for _, v := range nav.Views() {
		if access, _ := nav.Policy(v); access != nav.Authenticated {
			continue
		}
		if !seen[string(v)] {
			return fmt.Errorf("view %q has no navigation command", v)
		}
	}
	return nil
}

func promptID(in *bufio.Reader, out io.Writer, prompt string) (int64, error) {
	raw, err := getSimpleText(in, prompt, out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func promptTarget(in *bufio.Reader, out io.Writer, noun string) (int64, string, error) {
	id, err := promptID(in, out, noun+" id")
	if err != nil {
		return 0, "", err
	}
	name, err := getSimpleText(in, noun+" name (for the confirmation)", out)
	if err != nil {
		return 0, "", err
	}
	return id, name, nil
}

func promptAmount(in *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	raw, err := getSimpleText(in, prompt, out)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

func (a *App) promptAccountForm(in *bufio.Reader, out io.Writer) (models.AccountForm, error) {
	var form models.AccountForm
	var err error

	if form.Name, err = getSimpleText(in, "Name", out); err != nil {
		return form, err
	}
	if form.AccountType, err = getSimpleText(in, "Type (cash, bank, credit_card, ...)", out); err != nil {
		return form, err
	}
	if form.Balance, err = promptAmount(in, out, "Opening balance"); err != nil {
		return form, err
	}
	form.Description, err = getSimpleText(in, "Description (optional)", out)
	return form, err
}

func (a *App) promptExpenseForm(in *bufio.Reader, out io.Writer) (models.ExpenseForm, error) {
	var form models.ExpenseForm
	var err error

	accountID, err := promptID(in, out, "Account id")
	if err != nil {
		return form, err
	}
	form.AccountID = accountID

	if form.Amount, err = promptAmount(in, out, "Amount"); err != nil {
		return form, err
	}
	if form.Category, err = getSimpleText(in, "Category", out); err != nil {
		return form, err
	}
	if form.ExpenseDate, err = getSimpleText(in, "Date (YYYY-MM-DD)", out); err != nil {
		return form, err
	}
	if form.ExpenseType, err = getSimpleText(in, "Type (expense or income)", out); err != nil {
		return form, err
	}
	form.Description, err = getSimpleText(in, "Description (optional)", out)
	return form, err
}

func promptExpenseFilter(in *bufio.Reader, out io.Writer) (views.ExpenseFilter, error) {
	var f views.ExpenseFilter
	var err error

	if f.Type, err = getSimpleText(in, "Type (empty for all)", out); err != nil {
		return f, err
	}
	if f.Category, err = getSimpleText(in, "Category (empty for all)", out); err != nil {
		return f, err
	}
	if f.StartDate, err = getSimpleText(in, "Start date (empty for all)", out); err != nil {
		return f, err
	}
	if f.EndDate, err = getSimpleText(in, "End date (empty for all)", out); err != nil {
		return f, err
	}
	f.Search, err = getSimpleText(in, "Search (empty for all)", out)
	return f, err
}

func promptReimbursementFilter(in *bufio.Reader, out io.Writer) (views.ReimbursementFilter, error) {
	var f views.ReimbursementFilter
	var err error

	if f.Status, err = getSimpleText(in, "Status (empty for all)", out); err != nil {
		return f, err
	}
	if f.StartDate, err = getSimpleText(in, "Start date (empty for all)", out); err != nil {
		return f, err
	}
	if f.EndDate, err = getSimpleText(in, "End date (empty for all)", out); err != nil {
		return f, err
	}
	f.Search, err = getSimpleText(in, "Search (empty for all)", out)
	return f, err
}

func promptReimbursementForm(in *bufio.Reader, out io.Writer) (models.ReimbursementForm, error) {
	var form models.ReimbursementForm
	var err error

	if form.Title, err = getSimpleText(in, "Title", out); err != nil {
		return form, err
	}
	if form.Description, err = getSimpleText(in, "Description (optional)", out); err != nil {
		return form, err
	}

	raw, err := getSimpleText(in, "Expense ids (comma separated)", out)
	if err != nil {
		return form, err
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return form, fmt.Errorf("invalid expense id %q", part)
		}
		form.ExpenseIDs = append(form.ExpenseIDs, id)
	}
	return form, nil
}

func promptCategoryForm(in *bufio.Reader, out io.Writer) (models.CategoryForm, error) {
	var form models.CategoryForm
	var err error

	if form.Value, err = getSimpleText(in, "Value (identifier)", out); err != nil {
		return form, err
	}
	if form.Label, err = getSimpleText(in, "Label", out); err != nil {
		return form, err
	}
	form.CategoryType, err = getSimpleText(in, "Type (expense, income or both)", out)
	return form, err
}
