package usecase

import (
	"context"
	"sync"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	items     []job.Job
	err       error
	listCalls int
	created   []job.Job
	patches   map[uuid.UUID]job.Patch
	deleteErr error
	deleted   []uuid.UUID
}

func (m *mockJobRepo) List(context.Context) ([]job.Job, error) {
	m.listCalls++
	return append([]job.Job(nil), m.items...), m.err
}
func (m *mockJobRepo) ListOpen(context.Context) ([]job.Job, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []job.Job
	for _, j := range m.items {
		if j.IsOpen() {
			out = append(out, j)
		}
	}
	return out, nil
}
func (m *mockJobRepo) ListFeatured(context.Context) ([]job.Job, error) { return nil, m.err }
func (m *mockJobRepo) Get(_ context.Context, id uuid.UUID) (job.Job, error) {
	for _, j := range m.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, domain.NewNotFoundError("Job", id.String())
}
func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	m.created = append(m.created, j)
	m.items = append(m.items, j)
	return nil
}
func (m *mockJobRepo) Update(_ context.Context, id uuid.UUID, p job.Patch) error {
	if m.err != nil {
		return m.err
	}
	if m.patches == nil {
		m.patches = map[uuid.UUID]job.Patch{}
	}
	m.patches[id] = p
	return nil
}
func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}
func (m *mockJobRepo) CountOpen(context.Context) (int, error) { return 3, m.err }

type mockApplicationRepo struct {
	items    []job.Application
	err      error
	created  []job.Application
	statuses map[uuid.UUID]job.ApplicationStatus
}

func (m *mockApplicationRepo) List(context.Context) ([]job.Application, error) {
	return append([]job.Application(nil), m.items...), m.err
}
func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]job.Application, error) {
	var out []job.Application
	for _, a := range m.items {
		if a.JobID != nil && *a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, m.err
}
func (m *mockApplicationRepo) Get(_ context.Context, id uuid.UUID) (job.Application, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return job.Application{}, domain.NewNotFoundError("Application", id.String())
}
func (m *mockApplicationRepo) Create(_ context.Context, a job.Application) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}
func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, s job.ApplicationStatus) error {
	if m.err != nil {
		return m.err
	}
	if m.statuses == nil {
		m.statuses = map[uuid.UUID]job.ApplicationStatus{}
	}
	m.statuses[id] = s
	return nil
}
func (m *mockApplicationRepo) CountByStatus(context.Context, job.ApplicationStatus) (int, error) {
	return 2, m.err
}

type mockMessageRepo struct {
	items    []contact.Message
	err      error
	countErr error
	created  []contact.Message
	statuses map[uuid.UUID]contact.Status
}

func (m *mockMessageRepo) List(context.Context) ([]contact.Message, error) {
	return append([]contact.Message(nil), m.items...), m.err
}
func (m *mockMessageRepo) Get(_ context.Context, id uuid.UUID) (contact.Message, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return contact.Message{}, domain.NewNotFoundError("Message", id.String())
}
func (m *mockMessageRepo) Create(_ context.Context, msg contact.Message) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, msg)
	return nil
}
func (m *mockMessageRepo) UpdateStatus(_ context.Context, id uuid.UUID, s contact.Status) error {
	if m.err != nil {
		return m.err
	}
	if m.statuses == nil {
		m.statuses = map[uuid.UUID]contact.Status{}
	}
	m.statuses[id] = s
	return nil
}
func (m *mockMessageRepo) Count(context.Context) (int, error) { return 10, m.countErr }
func (m *mockMessageRepo) CountByStatus(context.Context, contact.Status) (int, error) {
	return 4, m.countErr
}

type mockProjectRepo struct {
	items []catalog.Project
	err   error
}

func (m *mockProjectRepo) List(context.Context) ([]catalog.Project, error) {
	return append([]catalog.Project(nil), m.items...), m.err
}
func (m *mockProjectRepo) ListFeatured(context.Context) ([]catalog.Project, error) {
	var out []catalog.Project
	for _, p := range m.items {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, m.err
}
func (m *mockProjectRepo) Get(context.Context, uuid.UUID) (catalog.Project, error) {
	return catalog.Project{}, m.err
}
func (m *mockProjectRepo) Create(context.Context, catalog.Project) error { return m.err }
func (m *mockProjectRepo) Update(context.Context, uuid.UUID, catalog.ProjectPatch) error {
	return m.err
}
func (m *mockProjectRepo) Delete(context.Context, uuid.UUID) error { return m.err }
func (m *mockProjectRepo) Count(_ context.Context, featuredOnly bool) (int, error) {
	if featuredOnly {
		return 1, m.err
	}
	return len(m.items), m.err
}

type mockServiceRepo struct {
	items []catalog.Service
	err   error
}

func (m *mockServiceRepo) List(context.Context) ([]catalog.Service, error) { return m.items, m.err }
func (m *mockServiceRepo) ListFeatured(context.Context) ([]catalog.Service, error) {
	return nil, m.err
}
func (m *mockServiceRepo) Get(context.Context, uuid.UUID) (catalog.Service, error) {
	return catalog.Service{}, m.err
}
func (m *mockServiceRepo) Create(context.Context, catalog.Service) error { return m.err }
func (m *mockServiceRepo) Update(context.Context, uuid.UUID, catalog.ServicePatch) error {
	return m.err
}
func (m *mockServiceRepo) Delete(context.Context, uuid.UUID) error { return m.err }
func (m *mockServiceRepo) Count(_ context.Context, featuredOnly bool) (int, error) {
	if featuredOnly {
		return 2, m.err
	}
	return 6, m.err
}

type mockContentRepo struct {
	items []content.WebContent
	err   error
}

func (m *mockContentRepo) List(context.Context) ([]content.WebContent, error) { return m.items, m.err }
func (m *mockContentRepo) ListBySection(_ context.Context, s content.Section) ([]content.WebContent, error) {
	var out []content.WebContent
	for _, c := range m.items {
		if c.Section == s {
			out = append(out, c)
		}
	}
	return out, m.err
}
func (m *mockContentRepo) Get(context.Context, uuid.UUID) (content.WebContent, error) {
	return content.WebContent{}, m.err
}
func (m *mockContentRepo) GetByKey(_ context.Context, key string) (content.WebContent, error) {
	for _, c := range m.items {
		if c.Key == key {
			return c, nil
		}
	}
	return content.WebContent{}, domain.NewNotFoundError("Content", key)
}
func (m *mockContentRepo) Create(context.Context, content.WebContent) error { return m.err }
func (m *mockContentRepo) Update(context.Context, uuid.UUID, content.Patch) error {
	return m.err
}
func (m *mockContentRepo) Delete(context.Context, uuid.UUID) error { return m.err }
func (m *mockContentRepo) Ensure(context.Context, content.WebContent) (bool, error) {
	return false, m.err
}

// mockCache stores JSON-compatible values by key in memory.
type mockCache struct {
	mu          sync.Mutex
	data        map[string]any
	invalidated []string
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string]any{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return false, nil
	}
	switch dst := out.(type) {
	case *[]job.Job:
		*dst = v.([]job.Job)
	case *[]catalog.Project:
		*dst = v.([]catalog.Project)
	default:
		return false, nil
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCache) InvalidateScope(_ context.Context, scope string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, scope)
	return nil
}

type recordedChange struct {
	entity, action, id string
}

type mockNotifier struct {
	changes      []recordedChange
	messages     []contact.Message
	applications []job.Application
}

func (m *mockNotifier) RecordChanged(entity, action, id string) {
	m.changes = append(m.changes, recordedChange{entity, action, id})
}
func (m *mockNotifier) MessageReceived(msg contact.Message) { m.messages = append(m.messages, msg) }
func (m *mockNotifier) ApplicationReceived(a job.Application) {
	m.applications = append(m.applications, a)
}
