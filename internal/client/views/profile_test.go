package views

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/nav"
)

func TestProfileLoader_Load(t *testing.T) {
	gw := newFakeGateway()
	gw.respond(http.MethodGet, api.EndpointProfile,
		`{"user":{"id":1,"username":"alice","email":"alice@example.com"}}`)
	gw.respond(http.MethodGet, api.EndpointAccounts,
		`{"accounts":[{"id":1},{"id":2}]}`)
	gw.respond(http.MethodGet, api.EndpointStatsOverview,
		`{"transaction_count":17}`)
	gw.respond(http.MethodGet, api.EndpointReimbursements,
		`{"reimbursements":[{"id":1}]}`)

	l := NewProfileLoader(gw, testLogger())
	rc := &fakeRenderContext{view: nav.ViewProfile}

	require.NoError(t, l.Load(context.Background(), rc))

	rendered := rc.rendered()
	require.Len(t, rendered, 2)

	profile, ok := rendered[0].(ProfilePayload)
	require.True(t, ok)
	require.NotNil(t, profile.User)
	assert.Equal(t, "alice", profile.User.Username)

	usage, ok := rendered[1].(UsageStats)
	require.True(t, ok, "usage stats render after the profile")
	assert.Equal(t, UsageStats{AccountCount: 2, TransactionCount: 17, ReimbursementCount: 1}, usage)
}

func TestProfileLoader_ProfileFailureIsFatal(t *testing.T) {
	gw := newFakeGateway()
	gw.fail(http.MethodGet, api.EndpointProfile, errors.New("boom"))

	l := NewProfileLoader(gw, testLogger())
	rc := &fakeRenderContext{view: nav.ViewProfile}

	require.Error(t, l.Load(context.Background(), rc))
	assert.Empty(t, rc.rendered())
}

func TestProfileLoader_UsageStatsFailureIsIgnored(t *testing.T) {
	gw := newFakeGateway()
	gw.respond(http.MethodGet, api.EndpointProfile, `{"user":{"id":1,"username":"alice"}}`)
	gw.fail(http.MethodGet, api.EndpointStatsOverview, errors.New("boom"))

	l := NewProfileLoader(gw, testLogger())
	rc := &fakeRenderContext{view: nav.ViewProfile}

	require.NoError(t, l.Load(context.Background(), rc))

	rendered := rc.rendered()
	require.Len(t, rendered, 1, "a single failed source drops the whole stats block")
	_, ok := rendered[0].(ProfilePayload)
	assert.True(t, ok)
}

func TestProfileManager_Update(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}
	refresh := &countingRefresh{}

	m := NewProfileManager(gw, notifier, refresh.fn(), testLogger())
	require.NoError(t, m.Update(context.Background(), "Alice B", "alice@example.com"))

	calls := gw.callsTo(http.MethodPut, api.EndpointProfile)
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]string{"name": "Alice B", "email": "alice@example.com"}, calls[0].body)
	assert.Equal(t, 1, refresh.calls)
}

func TestProfileManager_ChangePassword(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		gw := newFakeGateway()
		notifier := &fakeNotifier{}

		m := NewProfileManager(gw, notifier, (&countingRefresh{}).fn(), testLogger())
		err := m.ChangePassword(context.Background(), "old", "new1", "new2")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, 0, gw.callCount())
		require.Len(t, notifier.errors, 1)
	})

	t.Run("empty", func(t *testing.T) {
		gw := newFakeGateway()
		notifier := &fakeNotifier{}

		m := NewProfileManager(gw, notifier, (&countingRefresh{}).fn(), testLogger())
		err := m.ChangePassword(context.Background(), "", "", "")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, 0, gw.callCount())
	})

	t.Run("ok", func(t *testing.T) {
		gw := newFakeGateway()
		notifier := &fakeNotifier{}

		m := NewProfileManager(gw, notifier, (&countingRefresh{}).fn(), testLogger())
		require.NoError(t, m.ChangePassword(context.Background(), "old", "new", "new"))

		calls := gw.callsTo(http.MethodPost, api.EndpointChangePassword)
		require.Len(t, calls, 1)
		assert.Equal(t, map[string]string{"old_password": "old", "new_password": "new"}, calls[0].body)
		require.Len(t, notifier.successes, 1)
	})
}
