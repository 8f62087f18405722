// Package views defines one load plan per application view plus the mutation
// operations available from it. Load plans fetch through the request gateway
// and hand shaped payloads to the renderer; they hold no state beyond the
// in-flight calls.
package views

import (
	"context"
	"encoding/json"
)

// Gateway is the slice of the request gateway the loaders use. *api.Client
// satisfies it.
type Gateway interface {
	Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// Notifier displays transient messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// Confirm asks the user to confirm a destructive action.
type Confirm interface {
	Ask(msg string) bool
}

// RefreshFunc re-runs the load plan of the view a mutation belongs to. The
// application wires it to the navigator's re-entrant GoTo.
type RefreshFunc func(ctx context.Context)

// ValidationError is a client-side pre-submit check failure. It is raised and
// notified before any network call is made, so no partial submission occurs.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
