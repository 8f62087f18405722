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

func TestCategoriesLoader_Load(t *testing.T) {
	gw := newFakeGateway()
	gw.respond(http.MethodGet, api.EndpointCategories,
		`{"categories":[{"id":1,"value":"food","label":"Food"},{"id":2,"value":"transport","label":"Transport"}]}`)

	l := NewCategoriesLoader(gw, testLogger())
	rc := &fakeRenderContext{view: nav.ViewCategories}

	require.NoError(t, l.Load(context.Background(), rc))

	rendered := rc.rendered()
	require.Len(t, rendered, 1)
	payload, ok := rendered[0].(CategoriesPayload)
	require.True(t, ok)
	require.Len(t, payload.Categories, 2)
	assert.Equal(t, "food", payload.Categories[0].Value)
}

func TestCategoriesLoader_LoadError(t *testing.T) {
	gw := newFakeGateway()
	gw.fail(http.MethodGet, api.EndpointCategories, errors.New("boom"))

	l := NewCategoriesLoader(gw, testLogger())
	rc := &fakeRenderContext{view: nav.ViewCategories}

	require.Error(t, l.Load(context.Background(), rc))
	assert.Empty(t, rc.rendered())
}

func TestCategoryManager_CreateValidation(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}

	m := NewCategoryManager(gw, notifier, &fakeConfirm{}, (&countingRefresh{}).fn(), testLogger())
	err := m.Create(context.Background(), models.CategoryForm{Value: "food"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, gw.callCount())
}

func TestCategoryManager_DeleteNeedsConfirmation(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}
	refresh := &countingRefresh{}
	confirm := &fakeConfirm{answer: false}

	m := NewCategoryManager(gw, notifier, confirm, refresh.fn(), testLogger())
	require.NoError(t, m.Delete(context.Background(), 3, "Food"))

	assert.Equal(t, 0, gw.callCount())
	require.Len(t, confirm.asked, 1)

	confirm.answer = true
	require.NoError(t, m.Delete(context.Background(), 3, "Food"))
	require.Len(t, gw.callsTo(http.MethodDelete, api.CategoryPath(3)), 1)
	assert.Equal(t, 1, refresh.calls)
}

func TestCategoryManager_InitDefaults(t *testing.T) {
	gw := newFakeGateway()
	notifier := &fakeNotifier{}
	refresh := &countingRefresh{}

	m := NewCategoryManager(gw, notifier, &fakeConfirm{}, refresh.fn(), testLogger())
	require.NoError(t, m.InitDefaults(context.Background()))

	require.Len(t, gw.callsTo(http.MethodPost, api.EndpointCategoriesInitDefault), 1)
	assert.Equal(t, 1, refresh.calls)
	require.Len(t, notifier.successes, 1)
}
