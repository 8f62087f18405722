package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

// Statistics render payloads, one per widget. A zero-valued payload is the
// explicit empty state rendered when that widget's call fails.
type (
	StatisticsOverview struct {
		Overview models.Overview
	}
	StatisticsCategories struct {
		Categories []models.CategoryAmount
	}
	StatisticsTrend struct {
		Trend []models.TrendPoint
	}
	StatisticsAccounts struct {
		Accounts []models.AccountBalance
	}
	StatisticsMonthly struct {
		Summary models.MonthlySummary
	}
)

// StatisticsLoader populates the statistics view with five independent calls.
// Each has its own failure fallback: a failing widget renders its empty state
// and never aborts the other four.
type StatisticsLoader struct {
	gw  Gateway
	log logging.Logger
}

func NewStatisticsLoader(gw Gateway, log logging.Logger) *StatisticsLoader {
	return &StatisticsLoader{gw: gw, log: log}
}

func (l *StatisticsLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	var g errgroup.Group

	g.Go(func() error {
		var overview models.Overview
		if !l.fetch(ctx, api.EndpointStatsOverview, &overview) {
			rc.Render(StatisticsOverview{})
			return nil
		}
		rc.Render(StatisticsOverview{Overview: overview})
		return nil
	})

	g.Go(func() error {
		var analysis models.CategoryAnalysis
		if !l.fetch(ctx, api.EndpointStatsCategory, &analysis) {
			rc.Render(StatisticsCategories{})
			return nil
		}
		rc.Render(StatisticsCategories{Categories: analysis.Categories})
		return nil
	})

	g.Go(func() error {
		var trend models.TrendAnalysis
		if !l.fetch(ctx, api.EndpointStatsTrend, &trend) {
			rc.Render(StatisticsTrend{})
			return nil
		}
		rc.Render(StatisticsTrend{Trend: trend.Trend})
		return nil
	})

	g.Go(func() error {
		var accounts models.AccountAnalysis
		if !l.fetch(ctx, api.EndpointStatsAccount, &accounts) {
			rc.Render(StatisticsAccounts{})
			return nil
		}
		rc.Render(StatisticsAccounts{Accounts: accounts.Accounts})
		return nil
	})

	g.Go(func() error {
		var monthly models.MonthlySummary
		if !l.fetch(ctx, api.EndpointStatsMonthly, &monthly) {
			rc.Render(StatisticsMonthly{})
			return nil
		}
		rc.Render(StatisticsMonthly{Summary: monthly})
		return nil
	})

	return g.Wait()
}

// fetch gets path into out and reports whether it succeeded. Failures are
// logged only; the caller renders the empty state.
func (l *StatisticsLoader) fetch(ctx context.Context, path string, out any) bool {
	raw, err := l.gw.Get(ctx, path, nil)
	if err != nil {
		l.log.Warn(ctx, "statistics call failed", "path", path, "error", err)
		return false
	}
	if err := api.DecodeInto(raw, out); err != nil {
		l.log.Warn(ctx, "statistics decode failed", "path", path, "error", err)
		return false
	}
	return true
}
