package app

import (
	"context"
	"fmt"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/client/session"
	"bookkeeper/internal/client/views"
)

// Init is the sole startup entry point: it restores the persisted session and
// lands on the dashboard when one exists, on the login view otherwise.
func (a *App) Init(ctx context.Context) {
	sess, err := a.store.Restore()
	if err != nil {
		a.log.Warn(ctx, "restoring session failed", "error", err)
	}
	if sess != nil {
		a.nav.GoTo(ctx, nav.ViewDashboard)
		return
	}
	a.nav.GoTo(ctx, nav.ViewLogin)
}

// Login authenticates, persists the session and lands on the dashboard.
func (a *App) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		err := &views.ValidationError{Msg: "Username and password are required"}
		a.notifier.Error(err.Msg)
		return err
	}

	body := map[string]string{"username": username, "password": password}
	raw, err := a.client.Post(ctx, api.EndpointLogin, body)
	if err != nil {
		return err
	}

	var resp models.LoginResponse
	if err := api.DecodeInto(raw, &resp); err != nil {
		return err
	}
	if resp.AccessToken == "" || resp.User == nil {
		return fmt.Errorf("malformed login response")
	}

	if err := a.store.Save(&session.Session{Token: resp.AccessToken, User: resp.User}); err != nil {
		return err
	}

	a.notifier.Success(fmt.Sprintf("Welcome back, %s", resp.User.Username))
	a.nav.GoTo(ctx, nav.ViewDashboard)
	return nil
}

// Register creates an account. It never authenticates: on success the user is
// sent to the login view to sign in.
func (a *App) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	if username == "" || email == "" || password == "" {
		err := &views.ValidationError{Msg: "Username, email and password are required"}
		a.notifier.Error(err.Msg)
		return err
	}
	if password != confirmPassword {
		err := &views.ValidationError{Msg: "Passwords do not match"}
		a.notifier.Error(err.Msg)
		return err
	}

	body := map[string]string{"username": username, "email": email, "password": password}
	if _, err := a.client.Post(ctx, api.EndpointRegister, body); err != nil {
		return err
	}

	a.notifier.Success("Registration successful. Please log in.")
	a.nav.GoTo(ctx, nav.ViewLogin)
	return nil
}

// Logout drops the session and returns to the login view. Calling it without
// a session is a no-op apart from the navigation.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.nav.GoTo(ctx, nav.ViewLogin)
	a.notifier.Info("Logged out")
	return nil
}
