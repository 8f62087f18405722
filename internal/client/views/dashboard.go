package views

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

// Dashboard render payloads, one per widget.
type (
	OverviewCards struct {
		Overview models.Overview
	}
	RecentTransactions struct {
		Expenses []models.Expense
	}
	CategoryBreakdown struct {
		StartDate  string
		Categories []models.CategoryAmount
	}
)

// DashboardLoader populates the dashboard: current-month overview, the five
// most recent transactions and a category breakdown scoped from the first day
// of the current month through today.
type DashboardLoader struct {
	gw  Gateway
	log logging.Logger
	now func() time.Time
}

func NewDashboardLoader(gw Gateway, log logging.Logger) *DashboardLoader {
	return &DashboardLoader{gw: gw, log: log, now: time.Now}
}

// monthStart derives the first day of the month of now: the first 8
// characters of the ISO date plus "01".
func monthStart(now time.Time) string {
	return now.Format("2006-01-02")[:8] + "01"
}

func (l *DashboardLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	var g errgroup.Group

	g.Go(func() error {
		raw, err := l.gw.Get(ctx, api.EndpointStatsOverview, map[string]string{"period": "month"})
		if err != nil {
			return err
		}
		var overview models.Overview
		if err := api.DecodeInto(raw, &overview); err != nil {
			return err
		}
		rc.Render(OverviewCards{Overview: overview})
		return nil
	})

	g.Go(func() error {
		raw, err := l.gw.Get(ctx, api.EndpointExpenses, map[string]string{"per_page": "5"})
		if err != nil {
			return err
		}
		var list models.ExpenseList
		if err := api.DecodeInto(raw, &list); err != nil {
			return err
		}
		rc.Render(RecentTransactions{Expenses: list.Expenses})
		return nil
	})

	g.Go(func() error {
		start := monthStart(l.now())
		raw, err := l.gw.Get(ctx, api.EndpointStatsCategory, map[string]string{
			"type":       "expense",
			"start_date": start,
		})
		if err != nil {
			return err
		}
		var analysis models.CategoryAnalysis
		if err := api.DecodeInto(raw, &analysis); err != nil {
			return err
		}
		rc.Render(CategoryBreakdown{StartDate: start, Categories: analysis.Categories})
		return nil
	})

	return g.Wait()
}
