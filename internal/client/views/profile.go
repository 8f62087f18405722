package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

type (
	ProfilePayload struct {
		User *models.User
	}

	// UsageStats summarizes account, transaction and reimbursement counts.
	// The step is ignorable; it renders only once all three source calls have
	// resolved, whatever order they arrive in.
	UsageStats struct {
		AccountCount       int
		TransactionCount   int
		ReimbursementCount int
	}
)

// ProfileLoader populates the profile view: the user record (fatal), then the
// usage stats from three concurrent calls. The three calls have no dependency
// on each other, so they all run in parallel.
type ProfileLoader struct {
	gw  Gateway
	log logging.Logger
}

func NewProfileLoader(gw Gateway, log logging.Logger) *ProfileLoader {
	return &ProfileLoader{gw: gw, log: log}
}

func (l *ProfileLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	raw, err := l.gw.Get(ctx, api.EndpointProfile, nil)
	if err != nil {
		return err
	}
	var profile models.ProfileResponse
	if err := api.DecodeInto(raw, &profile); err != nil {
		return err
	}
	rc.Render(ProfilePayload{User: profile.User})

	var (
		g        errgroup.Group
		accounts models.AccountList
		overview models.Overview
		reimbs   models.ReimbursementList
	)

	g.Go(func() error {
		raw, err := l.gw.Get(ctx, api.EndpointAccounts, nil)
		if err != nil {
			return err
		}
		return api.DecodeInto(raw, &accounts)
	})

	g.Go(func() error {
		raw, err := l.gw.Get(ctx, api.EndpointStatsOverview, nil)
		if err != nil {
			return err
		}
		return api.DecodeInto(raw, &overview)
	})

	g.Go(func() error {
		raw, err := l.gw.Get(ctx, api.EndpointReimbursements, nil)
		if err != nil {
			return err
		}
		return api.DecodeInto(raw, &reimbs)
	})

	if err := g.Wait(); err != nil {
		l.log.Warn(ctx, "loading usage stats failed", "error", err)
		return nil
	}

	rc.Render(UsageStats{
		AccountCount:       len(accounts.Accounts),
		TransactionCount:   overview.TransactionCount,
		ReimbursementCount: len(reimbs.Reimbursements),
	})
	return nil
}

// ProfileManager carries the write operations of the profile view.
type ProfileManager struct {
	gw       Gateway
	notifier Notifier
	refresh  RefreshFunc
	log      logging.Logger
}

func NewProfileManager(gw Gateway, notifier Notifier, refresh RefreshFunc, log logging.Logger) *ProfileManager {
	return &ProfileManager{gw: gw, notifier: notifier, refresh: refresh, log: log}
}

// Update changes the display name and email of the current user.
func (m *ProfileManager) Update(ctx context.Context, name, email string) error {
	body := map[string]string{"name": name, "email": email}
	if _, err := m.gw.Put(ctx, api.EndpointProfile, body); err != nil {
		return err
	}
	m.notifier.Success("Profile updated")
	m.refresh(ctx)
	return nil
}

// ChangePassword submits a password change. A confirmation mismatch fails
// client-side before any network call.
func (m *ProfileManager) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		err := &ValidationError{Msg: "New passwords do not match"}
		m.notifier.Error(err.Msg)
		return err
	}
	if oldPassword == "" || newPassword == "" {
		err := &ValidationError{Msg: "Password must not be empty"}
		m.notifier.Error(err.Msg)
		return err
	}

	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	if _, err := m.gw.Post(ctx, api.EndpointChangePassword, body); err != nil {
		return err
	}
	m.notifier.Success("Password changed")
	return nil
}
