package handler

import (
	"context"
	"net/http"
	"testing"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/usecase"

	"github.com/google/uuid"
)

type mockPublic struct {
	jobs      map[uuid.UUID]job.Job
	lastQuery usecase.ProjectQuery
	section   content.Section
}

func (m *mockPublic) OpenJobs(context.Context) usecase.JobListing {
	return usecase.JobListing{Jobs: []job.Job{{Title: "Automation Engineer"}}, Fallback: true}
}

func (m *mockPublic) FeaturedJobs(context.Context) ([]job.Job, error) { return nil, nil }

func (m *mockPublic) Job(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, domain.NewNotFoundError("Job", id.String())
	}
	return j, nil
}

func (m *mockPublic) Projects(_ context.Context, q usecase.ProjectQuery) (usecase.ProjectPage, error) {
	m.lastQuery = q
	return usecase.ProjectPage{Page: q.Page, PerPage: q.PerPage}, nil
}

func (m *mockPublic) FeaturedProjects(context.Context) ([]catalog.Project, error) { return nil, nil }
func (m *mockPublic) Services(context.Context) ([]catalog.Service, error)         { return nil, nil }
func (m *mockPublic) FeaturedServices(context.Context) ([]catalog.Service, error) { return nil, nil }
func (m *mockPublic) Industries(context.Context) ([]catalog.Industry, error)      { return nil, nil }

func (m *mockPublic) Section(_ context.Context, s content.Section) (content.Lookup, error) {
	m.section = s
	if !s.Valid() {
		return nil, domain.NewNotFoundError("Section", string(s))
	}
	return content.Lookup{"hero_title": "Hello"}, nil
}

func (m *mockPublic) ContentByKey(_ context.Context, key string) (content.WebContent, error) {
	return content.WebContent{Key: key, Value: "v"}, nil
}

func TestPublicHandler_OpenJobsReportsFallback(t *testing.T) {
	app := newTestApp()
	NewPublicHandler(&mockPublic{}).RegisterRoutes(app.Group("/public"))

	resp, sr := doRequest(t, app, http.MethodGet, "/public/jobs", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out usecase.JobListing
	decodeData(t, sr, &out)
	if !out.Fallback || len(out.Jobs) != 1 {
		t.Fatalf("unexpected listing: %+v", out)
	}
}

func TestPublicHandler_JobIDErrors(t *testing.T) {
	app := newTestApp()
	NewPublicHandler(&mockPublic{}).RegisterRoutes(app.Group("/public"))

	resp, _ := doRequest(t, app, http.MethodGet, "/public/jobs/not-a-uuid", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, app, http.MethodGet, "/public/jobs/"+uuid.NewString(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestPublicHandler_FeaturedRouteIsNotAnID(t *testing.T) {
	app := newTestApp()
	NewPublicHandler(&mockPublic{}).RegisterRoutes(app.Group("/public"))

	resp, _ := doRequest(t, app, http.MethodGet, "/public/jobs/featured", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestPublicHandler_ProjectsQuery(t *testing.T) {
	m := &mockPublic{}
	app := newTestApp()
	NewPublicHandler(m).RegisterRoutes(app.Group("/public"))

	resp, _ := doRequest(t, app, http.MethodGet, "/public/projects?industry=Energy&page=2&per_page=3", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if m.lastQuery != (usecase.ProjectQuery{Industry: "Energy", Page: 2, PerPage: 3}) {
		t.Fatalf("unexpected query: %+v", m.lastQuery)
	}

	resp, _ = doRequest(t, app, http.MethodGet, "/public/projects?page=two", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad page, got %d", resp.StatusCode)
	}
}

func TestPublicHandler_SectionIsCaseInsensitive(t *testing.T) {
	m := &mockPublic{}
	app := newTestApp()
	NewPublicHandler(m).RegisterRoutes(app.Group("/public"))

	resp, sr := doRequest(t, app, http.MethodGet, "/public/content/Home", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if m.section != content.SectionHome {
		t.Fatalf("expected home, got %q", m.section)
	}
	var l content.Lookup
	decodeData(t, sr, &l)
	if l.Get("hero_title", "") != "Hello" {
		t.Fatalf("unexpected lookup: %+v", l)
	}

	resp, _ = doRequest(t, app, http.MethodGet, "/public/content/nowhere", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestPublicHandler_ContentByKeyRoute(t *testing.T) {
	app := newTestApp()
	NewPublicHandler(&mockPublic{}).RegisterRoutes(app.Group("/public"))

	resp, sr := doRequest(t, app, http.MethodGet, "/public/content/key/hero_title", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var wc content.WebContent
	decodeData(t, sr, &wc)
	if wc.Key != "hero_title" {
		t.Fatalf("unexpected content: %+v", wc)
	}
}
