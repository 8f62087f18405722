package views

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

type gwCall struct {
	method string
	path   string
	params map[string]string
	body   any
}

// fakeGateway replays canned responses keyed by "METHOD path".
type fakeGateway struct {
	mu        sync.Mutex
	responses map[string]json.RawMessage
	errs      map[string]error
	calls     []gwCall
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		responses: map[string]json.RawMessage{},
		errs:      map[string]error{},
	}
}

func (f *fakeGateway) respond(method, path, body string) {
	f.responses[method+" "+path] = json.RawMessage(body)
}

func (f *fakeGateway) fail(method, path string, err error) {
	f.errs[method+" "+path] = err
}

func (f *fakeGateway) do(method, path string, params map[string]string, body any) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, gwCall{method: method, path: path, params: params, body: body})
	key := method + " " + path
	err := f.errs[key]
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return json.RawMessage(`{}`), nil
	}
	return resp, nil
}

func (f *fakeGateway) Get(_ context.Context, path string, params map[string]string) (json.RawMessage, error) {
	return f.do(http.MethodGet, path, params, nil)
}

func (f *fakeGateway) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	return f.do(http.MethodPost, path, nil, body)
}

func (f *fakeGateway) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	return f.do(http.MethodPut, path, nil, body)
}

func (f *fakeGateway) Delete(_ context.Context, path string) (json.RawMessage, error) {
	return f.do(http.MethodDelete, path, nil, nil)
}

func (f *fakeGateway) callsTo(method, path string) []gwCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []gwCall
	for _, c := range f.calls {
		if c.method == method && c.path == path {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeRenderContext collects everything a load plan renders.
type fakeRenderContext struct {
	mu       sync.Mutex
	view     nav.View
	payloads []any
}

func (rc *fakeRenderContext) View() nav.View { return rc.view }

func (rc *fakeRenderContext) Render(data any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.payloads = append(rc.payloads, data)
}

func (rc *fakeRenderContext) rendered() []any {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return append([]any(nil), rc.payloads...)
}

type fakeNotifier struct {
	successes []string
	errors    []string
	warnings  []string
	infos     []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }
func (f *fakeNotifier) Warning(msg string) { f.warnings = append(f.warnings, msg) }
func (f *fakeNotifier) Info(msg string)    { f.infos = append(f.infos, msg) }

// fakeConfirm answers every question with a fixed verdict.
type fakeConfirm struct {
	answer bool
	asked  []string
}

func (f *fakeConfirm) Ask(msg string) bool {
	f.asked = append(f.asked, msg)
	return f.answer
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func testLogger() logging.Logger {
	return logging.New(logging.Options{Level: "error", Out: nullWriter{}})
}

// countingRefresh records how often a mutation asked for a view reload.
type countingRefresh struct {
	calls int
}

func (c *countingRefresh) fn() RefreshFunc {
	return func(context.Context) { c.calls++ }
}
