// Package nav routes between application views: it gates navigation on the
// session state, tracks the current view and dispatches each view's data
// loading.
package nav

import (
	"context"
	"fmt"
	"sync"

	"bookkeeper/internal/logging"
)

// SessionSource reports the current session token; "" means logged out.
type SessionSource interface {
	Token() string
}

// Notifier is the slice of the notification surface the navigator needs.
type Notifier interface {
	Warning(msg string)
}

// Renderer receives the shaped payloads a view's load plan produces.
// Implementations must tolerate concurrent calls: load plans may run steps in
// parallel.
type Renderer interface {
	Render(view View, data any)
}

// RenderContext is handed to a loader for one navigation. Renders issued
// through it are dropped once a newer navigation has happened, so a late
// response can never touch another view's state.
type RenderContext interface {
	// View is the view this load plan populates.
	View() View

	// Render forwards data to the renderer if this navigation is still the
	// latest one.
	Render(data any)
}

// Loader executes a view's load plan.
type Loader interface {
	Load(ctx context.Context, rc RenderContext) error
}

// Navigator is the view state machine. It is re-entrant: navigating to the
// current view re-runs its load plan, which is how mutations refresh.
type Navigator struct {
	sessions SessionSource
	renderer Renderer
	notifier Notifier
	loaders  map[View]Loader
	log      logging.Logger

	mu      sync.Mutex
	current View
	gen     uint64
}

// New validates the loader table against the view set: every authenticated
// view needs a load plan, the public views must not have one, and no loader
// may be registered for an unknown view.
func New(sessions SessionSource, renderer Renderer, notifier Notifier, loaders map[View]Loader, log logging.Logger) (*Navigator, error) {
	for _, v := range Views() {
		access, _ := Policy(v)
		_, hasLoader := loaders[v]
		if access == Authenticated && !hasLoader {
			return nil, fmt.Errorf("view %q has no loader", v)
		}
		if access == Public && hasLoader {
			return nil, fmt.Errorf("view %q must not have a loader", v)
		}
	}
	for v := range loaders {
		if _, ok := Policy(v); !ok {
			return nil, fmt.Errorf("loader registered for unknown view %q", v)
		}
	}

	return &Navigator{
		sessions: sessions,
		renderer: renderer,
		notifier: notifier,
		loaders:  loaders,
		log:      log,
	}, nil
}

// Current returns the active view.
func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// GoTo navigates to v and runs its load plan. An authenticated view requested
// without a session redirects to login with a warning. A failing load plan is
// logged but does not revert the navigation: the view stays current even when
// its data could not be fetched. Returns the view that actually became
// current.
func (n *Navigator) GoTo(ctx context.Context, v View) View {
	access, ok := Policy(v)
	if !ok {
		n.log.Warn(ctx, "unknown view requested", "view", v)
		return n.Current()
	}

	if access == Authenticated && n.sessions.Token() == "" {
		n.notifier.Warning("Please log in first")
		v = ViewLogin
	}

	n.mu.Lock()
	n.gen++
	g := n.gen
	n.current = v
	n.mu.Unlock()

	if loader, ok := n.loaders[v]; ok {
		rc := &renderContext{nav: n, view: v, gen: g}
		if err := loader.Load(ctx, rc); err != nil {
			n.log.Error(ctx, "view load failed", "view", v, "error", err)
		}
	}

	return v
}

type renderContext struct {
	nav  *Navigator
	view View
	gen  uint64
}

func (rc *renderContext) View() View { return rc.view }

func (rc *renderContext) Render(data any) {
	rc.nav.mu.Lock()
	live := rc.nav.gen == rc.gen
	rc.nav.mu.Unlock()

	if !live {
		rc.nav.log.Debug(context.Background(), "dropping stale render", "view", rc.view)
		return
	}
	rc.nav.renderer.Render(rc.view, data)
}
