package handler

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockProjectStore struct {
	mu      sync.Mutex
	items   []catalog.Project
	deleted []uuid.UUID
}

func (m *mockProjectStore) List(context.Context) ([]catalog.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.Project(nil), m.items...), nil
}

func (m *mockProjectStore) Get(_ context.Context, id uuid.UUID) (catalog.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Project{}, domain.NewNotFoundError("Project", id.String())
}

func (m *mockProjectStore) Create(_ context.Context, p catalog.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.items = append(m.items, p)
	return nil
}

func (m *mockProjectStore) Update(_ context.Context, id uuid.UUID, patch catalog.ProjectPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.ID == id {
			m.items[i] = patch.Apply(p)
			return nil
		}
	}
	return domain.NewNotFoundError("Project", id.String())
}

func (m *mockProjectStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return domain.NewNotFoundError("Project", id.String())
}

func newProjectsApp(store *mockProjectStore, authed bool) *fiber.App {
	uc := usecase.NewCollection(usecase.CollectionConfig[catalog.Project, catalog.ProjectPatch]{
		Name:  "projects",
		Scope: usecase.ScopeProjects,
		Store: store,
		Table: func(ws *listview.Workspace) *listview.Table[catalog.Project] { return ws.Projects },
		Apply: catalog.ProjectPatch.Apply,
	})
	h := NewCollectionHandler[catalog.Project, catalog.ProjectPatch](uc, listview.NewWorkspaceStore(time.Hour, nil), listview.ProjectSchema(), ProjectCodec(validate.New()))

	app := newTestApp()
	g := app.Group("/admin")
	if authed {
		g.Use(withSession("s1"))
	}
	h.RegisterRoutes(g.Group("/projects"))
	return app
}

func newProject(title, industry string) catalog.Project {
	return catalog.Project{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Title:       title,
		Summary:     "Summary",
		Description: "Description",
		Industry:    industry,
	}
}

func TestCollectionHandler_CreateReturnsRefreshedPage(t *testing.T) {
	store := &mockProjectStore{}
	app := newProjectsApp(store, true)

	body := map[string]any{
		"title":       "Substation upgrade",
		"summary":     "Grid work",
		"description": "Full retrofit",
		"industry":    "Energy",
	}
	resp, sr := doRequest(t, app, http.MethodPost, "/admin/projects", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.StatusCode, sr.Message)
	}
	var page struct {
		Items []catalog.Project `json:"items"`
		Total int               `json:"total"`
	}
	decodeData(t, sr, &page)
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].Title != "Substation upgrade" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestCollectionHandler_CreateValidates(t *testing.T) {
	app := newProjectsApp(&mockProjectStore{}, true)

	resp, _ := doRequest(t, app, http.MethodPost, "/admin/projects", map[string]any{"title": "Only a title"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCollectionHandler_ListFiltersAndSorts(t *testing.T) {
	store := &mockProjectStore{items: []catalog.Project{
		newProject("Wind farm", "Energy"),
		newProject("Clinic wiring", "Healthcare"),
		newProject("Solar array", "Energy"),
	}}
	app := newProjectsApp(store, true)

	resp, sr := doRequest(t, app, http.MethodGet, "/admin/projects?industry=Energy&sort=title", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var page struct {
		Items   []catalog.Project   `json:"items"`
		Total   int                 `json:"total"`
		Options map[string][]string `json:"options"`
	}
	decodeData(t, sr, &page)
	if len(page.Items) != 2 || page.Total != 3 {
		t.Fatalf("unexpected page: %d items of %d", len(page.Items), page.Total)
	}
	if page.Items[0].Title != "Solar array" || page.Items[1].Title != "Wind farm" {
		t.Fatalf("unexpected order: %q, %q", page.Items[0].Title, page.Items[1].Title)
	}
	if len(page.Options["industry"]) != 2 {
		t.Fatalf("expected industry options, got %v", page.Options)
	}

	resp, _ = doRequest(t, app, http.MethodGet, "/admin/projects?sort=budget", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort, got %d", resp.StatusCode)
	}
}

func TestCollectionHandler_DeleteNeedsRequestThenConfirm(t *testing.T) {
	p := newProject("Wind farm", "Energy")
	store := &mockProjectStore{items: []catalog.Project{p}}
	app := newProjectsApp(store, true)
	base := "/admin/projects/" + p.ID.String()

	resp, _ := doRequest(t, app, http.MethodPost, base+"/delete/confirm", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 without a request, got %d", resp.StatusCode)
	}

	resp, sr := doRequest(t, app, http.MethodPost, base+"/delete", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var page struct {
		PendingDelete *uuid.UUID `json:"pending_delete"`
	}
	decodeData(t, sr, &page)
	if page.PendingDelete == nil || *page.PendingDelete != p.ID {
		t.Fatalf("expected pending delete for %s, got %v", p.ID, page.PendingDelete)
	}

	resp, _ = doRequest(t, app, http.MethodPost, base+"/delete/confirm", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(store.deleted) != 1 || store.deleted[0] != p.ID {
		t.Fatalf("expected %s deleted, got %v", p.ID, store.deleted)
	}
}

func TestCollectionHandler_CancelDisarms(t *testing.T) {
	p := newProject("Wind farm", "Energy")
	store := &mockProjectStore{items: []catalog.Project{p}}
	app := newProjectsApp(store, true)
	base := "/admin/projects/" + p.ID.String()

	doRequest(t, app, http.MethodPost, base+"/delete", nil)
	resp, _ := doRequest(t, app, http.MethodPost, "/admin/projects/delete/cancel", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp, _ = doRequest(t, app, http.MethodPost, base+"/delete/confirm", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 after cancel, got %d", resp.StatusCode)
	}
	if len(store.deleted) != 0 {
		t.Fatalf("nothing should be deleted, got %v", store.deleted)
	}
}

func TestCollectionHandler_UpdateMergesIntoTable(t *testing.T) {
	p := newProject("Wind farm", "Energy")
	store := &mockProjectStore{items: []catalog.Project{p}}
	app := newProjectsApp(store, true)

	doRequest(t, app, http.MethodGet, "/admin/projects", nil)
	resp, sr := doRequest(t, app, http.MethodPatch, "/admin/projects/"+p.ID.String(), map[string]any{"title": "Offshore wind"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var page struct {
		Items []catalog.Project `json:"items"`
	}
	decodeData(t, sr, &page)
	if len(page.Items) != 1 || page.Items[0].Title != "Offshore wind" || page.Items[0].Industry != "Energy" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestCollectionHandler_RequiresSession(t *testing.T) {
	app := newProjectsApp(&mockProjectStore{}, false)

	resp, _ := doRequest(t, app, http.MethodGet, "/admin/projects", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestCollectionHandler_GetByID(t *testing.T) {
	p := newProject("Wind farm", "Energy")
	app := newProjectsApp(&mockProjectStore{items: []catalog.Project{p}}, true)

	resp, _ := doRequest(t, app, http.MethodGet, "/admin/projects/"+p.ID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp, _ = doRequest(t, app, http.MethodGet, "/admin/projects/"+uuid.NewString(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
