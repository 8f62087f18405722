package views

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
)

func TestComputeReimbursementStats(t *testing.T) {
	items := []models.Reimbursement{
		{Status: models.ReimbursementPending, TotalAmount: 100},
		{Status: models.ReimbursementPending, TotalAmount: 25.5},
		{Status: models.ReimbursementApproved, TotalAmount: 40},
		{Status: models.ReimbursementRejected, TotalAmount: 10},
	}

	stats := ComputeReimbursementStats(items)
	assert.Equal(t, ReimbursementStats{TotalAmount: 175.5, Pending: 2, Approved: 1, Rejected: 1}, stats)
	assert.Equal(t, ReimbursementStats{}, ComputeReimbursementStats(nil))
}

func TestReimbursementsLoader_Load(t *testing.T) {
	gw := newFakeGateway()
	gw.respond(http.MethodGet, api.EndpointReimbursements,
		`{"reimbursements":[{"id":1,"status":"pending","total_amount":50}]}`)
	gw.respond(http.MethodGet, api.EndpointAvailableExpenses,
		`{"expenses":[{"id":7,"description":"taxi"}]}`)

	l := NewReimbursementsLoader(gw, testLogger())
	l.SetFilter(ReimbursementFilter{Status: "pending"})

	rc := &fakeRenderContext{view: nav.ViewReimbursements}
	require.NoError(t, l.Load(context.Background(), rc))

	calls := gw.callsTo(http.MethodGet, api.EndpointReimbursements)
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]string{"status": "pending"}, calls[0].params)

	rendered := rc.rendered()
	require.Len(t, rendered, 2)
	payload, ok := rendered[0].(ReimbursementsPayload)
	require.True(t, ok)
	assert.Equal(t, 1, payload.Stats.Pending)
	assert.Equal(t, 50.0, payload.Stats.TotalAmount)
}

func TestReimbursementsLoader_AvailableExpensesIgnorable(t *testing.T) {
	gw := newFakeGateway()
	gw.respond(http.MethodGet, api.EndpointReimbursements, `{"reimbursements":[]}`)
	gw.fail(http.MethodGet, api.EndpointAvailableExpenses, errors.New("boom"))

	l := NewReimbursementsLoader(gw, testLogger())
	rc := &fakeRenderContext{view: nav.ViewReimbursements}

	require.NoError(t, l.Load(context.Background(), rc))
	require.Len(t, rc.rendered(), 1)
}

func TestReimbursementManager_CreateRequiresExpenses(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}

	m := NewReimbursementManager(gw, notifier, &fakeConfirm{}, (&countingRefresh{}).fn(), testLogger())
	err := m.Create(context.Background(), models.ReimbursementForm{Title: "March travel"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, gw.callCount(), "validation failures never reach the network")
	require.Len(t, notifier.errors, 1)
}

func TestReimbursementManager_Create(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}
	refresh := &countingRefresh{}

	m := NewReimbursementManager(gw, notifier, &fakeConfirm{}, refresh.fn(), testLogger())
	form := models.ReimbursementForm{Title: "March travel", ExpenseIDs: []int64{3, 4}}
	require.NoError(t, m.Create(context.Background(), form))

	calls := gw.callsTo(http.MethodPost, api.EndpointReimbursements)
	require.Len(t, calls, 1)
	assert.Equal(t, form, calls[0].body)
	assert.Equal(t, 1, refresh.calls)
	require.Len(t, notifier.successes, 1)
}

func TestReimbursementManager_SetStatus(t *testing.T) {
	tests := []struct {
		name    string
		approve bool
		action  string
	}{
		{name: "approve", approve: true, action: "approve"},
		{name: "reject", approve: false, action: "reject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newFakeGateway()
			notifier := &fakeNotifier{}
			refresh := &countingRefresh{}

			m := NewReimbursementManager(gw, notifier, &fakeConfirm{}, refresh.fn(), testLogger())
			require.NoError(t, m.SetStatus(context.Background(), 12, tt.approve))

			calls := gw.callsTo(http.MethodPost, api.ReimbursementApprovePath(12))
			require.Len(t, calls, 1)
			assert.Equal(t, map[string]string{"action": tt.action}, calls[0].body)
			assert.Equal(t, 1, refresh.calls)
		})
	}
}

func TestReimbursementManager_DeleteNeedsConfirmation(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}
	refresh := &countingRefresh{}

	m := NewReimbursementManager(gw, notifier, &fakeConfirm{answer: false}, refresh.fn(), testLogger())
	require.NoError(t, m.Delete(context.Background(), 5, "March travel"))

	assert.Equal(t, 0, gw.callCount())
	assert.Equal(t, 0, refresh.calls)
}
