package views

import (
	"context"
	"fmt"

	"bookkeeper/internal/client/api"
	"bookkeeper/internal/client/models"
	"bookkeeper/internal/client/nav"
	"bookkeeper/internal/logging"
)

type CategoriesPayload struct {
	Categories []models.Category
}

// CategoriesLoader populates the category management view.
type CategoriesLoader struct {
	gw  Gateway
	log logging.Logger
}

func NewCategoriesLoader(gw Gateway, log logging.Logger) *CategoriesLoader {
	return &CategoriesLoader{gw: gw, log: log}
}

func (l *CategoriesLoader) Load(ctx context.Context, rc nav.RenderContext) error {
	raw, err := l.gw.Get(ctx, api.EndpointCategories, nil)
	if err != nil {
		return err
	}
	var list models.CategoryList
	if err := api.DecodeInto(raw, &list); err != nil {
		return err
	}
	rc.Render(CategoriesPayload{Categories: list.Categories})
	return nil
}

// CategoryManager carries the write operations of the categories view.
type CategoryManager struct {
	gw       Gateway
	notifier Notifier
	confirm  Confirm
	refresh  RefreshFunc
	log      logging.Logger
}

func NewCategoryManager(gw Gateway, notifier Notifier, confirm Confirm, refresh RefreshFunc, log logging.Logger) *CategoryManager {
	return &CategoryManager{gw: gw, notifier: notifier, confirm: confirm, refresh: refresh, log: log}
}

func (m *CategoryManager) Create(ctx context.Context, form models.CategoryForm) error {
	if form.Value == "" || form.Label == "" {
		err := &ValidationError{Msg: "Category value and label are required"}
		m.notifier.Error(err.Msg)
		return err
	}
	if _, err := m.gw.Post(ctx, api.EndpointCategories, form); err != nil {
		return err
	}
	m.notifier.Success("Category saved")
	m.refresh(ctx)
	return nil
}

func (m *CategoryManager) Update(ctx context.Context, id int64, form models.CategoryForm) error {
	if _, err := m.gw.Put(ctx, api.CategoryPath(id), form); err != nil {
		return err
	}
	m.notifier.Success("Category updated")
	m.refresh(ctx)
	return nil
}

// Delete asks for confirmation before issuing the request. Declining is a
// no-op with no network call.
func (m *CategoryManager) Delete(ctx context.Context, id int64, label string) error {
	if !m.confirm.Ask(fmt.Sprintf("Delete category %q?", label)) {
		return nil
	}
	if _, err := m.gw.Delete(ctx, api.CategoryPath(id)); err != nil {
		return err
	}
	m.notifier.Success("Category deleted")
	m.refresh(ctx)
	return nil
}

// InitDefaults asks the server to create the built-in category set.
func (m *CategoryManager) InitDefaults(ctx context.Context) error {
	if _, err := m.gw.Post(ctx, api.EndpointCategoriesInitDefault, nil); err != nil {
		return err
	}
	m.notifier.Success("Default categories initialized")
	m.refresh(ctx)
	return nil
}
