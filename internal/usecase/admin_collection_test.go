package usecase

import (
	"context"
	"errors"
	"testing"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/listview"

	"github.com/google/uuid"
)

func newJobCollection(repo *mockJobRepo, cache ContentCache, notify RecordNotifier) *Collection[job.Job, job.Patch] {
	return NewCollection(CollectionConfig[job.Job, job.Patch]{
		Name:   "jobs",
		Scope:  ScopeJobs,
		Store:  repo,
		Table:  func(ws *listview.Workspace) *listview.Table[job.Job] { return ws.Jobs },
		Apply:  job.Patch.Apply,
		Cache:  cache,
		Notify: notify,
	})
}

func TestCollection_ViewLoadsOnceAndAppliesQuery(t *testing.T) {
	repo := &mockJobRepo{items: []job.Job{
		{ID: uuid.New(), Title: "Electrical Engineer", Status: job.StatusOpen, PostDate: "2024-01-01"},
		{ID: uuid.New(), Title: "Accountant", Status: job.StatusDraft, PostDate: "2024-02-01"},
	}}
	c := newJobCollection(repo, nil, nil)
	ws := listview.NewWorkspace()

	search := "engineer"
	page, err := c.View(context.Background(), ws, ViewRequest{Search: &search})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 1 || page.Total != 2 {
		t.Fatalf("unexpected page: %d items of %d", len(page.Items), page.Total)
	}
	if _, err := c.View(context.Background(), ws, ViewRequest{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected a single load, got %d", repo.listCalls)
	}
	if _, err := c.View(context.Background(), ws, ViewRequest{Refresh: true}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("refresh must reload, got %d loads", repo.listCalls)
	}
	if got := page.Options["status"]; len(got) != 2 {
		t.Fatalf("expected status options, got %v", got)
	}
}

func TestCollection_ViewRejectsUnknownSort(t *testing.T) {
	c := newJobCollection(&mockJobRepo{}, nil, nil)
	_, err := c.View(context.Background(), listview.NewWorkspace(), ViewRequest{Sort: "salary"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCollection_CreateRefetchesAndInvalidates(t *testing.T) {
	repo := &mockJobRepo{}
	cache := newMockCache()
	n := &mockNotifier{}
	c := newJobCollection(repo, cache, n)
	ws := listview.NewWorkspace()

	if err := c.Create(context.Background(), ws, job.Job{Title: "New", Requirements: []string{"x"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ws.Jobs.Len() != 1 || repo.listCalls != 1 {
		t.Fatalf("expected refetch into table, len=%d loads=%d", ws.Jobs.Len(), repo.listCalls)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != ScopeJobs {
		t.Fatalf("expected jobs scope invalidated, got %v", cache.invalidated)
	}
	if len(n.changes) != 1 || n.changes[0].action != "created" {
		t.Fatalf("unexpected notifications: %+v", n.changes)
	}
}

func TestCollection_UpdateMergesKnownFields(t *testing.T) {
	id := uuid.New()
	repo := &mockJobRepo{items: []job.Job{{ID: id, Title: "Old", Department: "Ops", Status: job.StatusDraft}}}
	c := newJobCollection(repo, nil, nil)
	ws := listview.NewWorkspace()
	if _, err := c.View(context.Background(), ws, ViewRequest{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	title := "New"
	open := job.StatusOpen
	if err := c.Update(context.Background(), ws, id, job.Patch{Title: &title, Status: &open}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, _ := ws.Jobs.Find(id)
	if got.Title != "New" || got.Status != job.StatusOpen || got.Department != "Ops" {
		t.Fatalf("unexpected merged row: %+v", got)
	}
	if repo.listCalls != 1 {
		t.Fatalf("update must not refetch, got %d loads", repo.listCalls)
	}
}

func TestCollection_UpdateFailureLeavesRow(t *testing.T) {
	id := uuid.New()
	repo := &mockJobRepo{items: []job.Job{{ID: id, Title: "Old"}}}
	c := newJobCollection(repo, nil, nil)
	ws := listview.NewWorkspace()
	_, _ = c.View(context.Background(), ws, ViewRequest{})

	repo.err = domain.NewStoreError("jobs.update", errors.New("timeout"))
	title := "New"
	if err := c.Update(context.Background(), ws, id, job.Patch{Title: &title}); !domain.IsStore(err) {
		t.Fatalf("expected store error, got %v", err)
	}
	if got, _ := ws.Jobs.Find(id); got.Title != "Old" {
		t.Fatalf("row changed on failure: %+v", got)
	}
}

func TestCollection_TwoStepDelete(t *testing.T) {
	id := uuid.New()
	repo := &mockJobRepo{items: []job.Job{{ID: id, Title: "A"}, {ID: uuid.New(), Title: "B"}}}
	n := &mockNotifier{}
	c := newJobCollection(repo, nil, n)
	ws := listview.NewWorkspace()

	if err := c.ConfirmDelete(context.Background(), ws, id); !errors.Is(err, listview.ErrNotArmed) {
		t.Fatalf("expected ErrNotArmed, got %v", err)
	}
	if err := c.RequestDelete(context.Background(), ws, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	repo.deleteErr = domain.NewStoreError("jobs.delete", errors.New("boom"))
	if err := c.ConfirmDelete(context.Background(), ws, id); err == nil {
		t.Fatalf("expected delete failure")
	}
	if pending, ok := ws.Jobs.PendingDelete(); !ok || pending != id {
		t.Fatalf("row must stay armed after failure")
	}

	repo.deleteErr = nil
	if err := c.ConfirmDelete(context.Background(), ws, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ws.Jobs.Len() != 1 || len(repo.deleted) != 1 {
		t.Fatalf("expected row removed, len=%d deleted=%d", ws.Jobs.Len(), len(repo.deleted))
	}
	if len(n.changes) != 1 || n.changes[0].action != "deleted" || n.changes[0].id != id.String() {
		t.Fatalf("unexpected notifications: %+v", n.changes)
	}
}

func TestCollection_CancelDelete(t *testing.T) {
	id := uuid.New()
	c := newJobCollection(&mockJobRepo{items: []job.Job{{ID: id}}}, nil, nil)
	ws := listview.NewWorkspace()
	if err := c.RequestDelete(context.Background(), ws, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c.CancelDelete(ws)
	if _, ok := ws.Jobs.PendingDelete(); ok {
		t.Fatalf("expected no pending delete")
	}
}

func TestAdminApplications_ResolvesJobTitles(t *testing.T) {
	jobID := uuid.New()
	gone := uuid.New()
	jobs := &mockJobRepo{items: []job.Job{{ID: jobID, Title: "Site Engineer"}}}
	apps := &mockApplicationRepo{items: []job.Application{
		{ID: uuid.New(), FirstName: "A", JobID: &jobID},
		{ID: uuid.New(), FirstName: "B"},
		{ID: uuid.New(), FirstName: "C", JobID: &gone},
	}}
	uc := NewAdminApplicationsUsecase(apps, jobs, nil, nil)

	page, err := uc.View(context.Background(), listview.NewWorkspace(), ViewRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	titles := map[string]string{}
	for _, r := range page.Items {
		titles[r.FirstName] = r.JobTitle
	}
	want := map[string]string{"A": "Site Engineer", "B": job.GeneralApplicationTitle, "C": UnknownJobTitle}
	for k, v := range want {
		if titles[k] != v {
			t.Fatalf("%s: expected %q, got %q", k, v, titles[k])
		}
	}
	if page.JobTitles[listview.GeneralJobFilter] != job.GeneralApplicationTitle {
		t.Fatalf("missing general label: %v", page.JobTitles)
	}
}

func TestAdminApplications_FilterGeneral(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{items: []job.Application{
		{ID: uuid.New(), FirstName: "A", JobID: &jobID},
		{ID: uuid.New(), FirstName: "B"},
	}}
	uc := NewAdminApplicationsUsecase(apps, &mockJobRepo{}, nil, nil)

	page, err := uc.View(context.Background(), listview.NewWorkspace(), ViewRequest{
		Filters: map[string]string{"job": listview.GeneralJobFilter},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].FirstName != "B" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestAdminApplications_UpdateStatus(t *testing.T) {
	id := uuid.New()
	apps := &mockApplicationRepo{items: []job.Application{{ID: id, Status: job.ApplicationNew}}}
	uc := NewAdminApplicationsUsecase(apps, &mockJobRepo{}, nil, nil)
	ws := listview.NewWorkspace()
	_, _ = uc.View(context.Background(), ws, ViewRequest{})

	if err := uc.UpdateStatus(context.Background(), ws, id, "archived"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := uc.UpdateStatus(context.Background(), ws, id, job.ApplicationInterview); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got, _ := ws.Applications.Find(id); got.Status != job.ApplicationInterview {
		t.Fatalf("expected merged status, got %q", got.Status)
	}
}

func TestAdminApplications_ByJob(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{items: []job.Application{
		{ID: uuid.New(), JobID: &jobID},
		{ID: uuid.New()},
	}}
	uc := NewAdminApplicationsUsecase(apps, &mockJobRepo{items: []job.Job{{ID: jobID, Title: "PM"}}}, nil, nil)
	rows, err := uc.ByJob(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 || rows[0].JobTitle != "PM" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestAdminMessages_OpenMarksNewAsRead(t *testing.T) {
	id := uuid.New()
	repo := &mockMessageRepo{items: []contact.Message{{ID: id, Name: "Ann", Status: contact.StatusNew}}}
	uc := NewAdminMessagesUsecase(repo, nil, nil)
	ws := listview.NewWorkspace()
	_, _ = uc.View(context.Background(), ws, ViewRequest{})

	m, err := uc.Open(context.Background(), ws, id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Status != contact.StatusRead || repo.statuses[id] != contact.StatusRead {
		t.Fatalf("expected read, got %q / %q", m.Status, repo.statuses[id])
	}
	if got, _ := ws.Messages.Find(id); got.Status != contact.StatusRead {
		t.Fatalf("table not merged: %q", got.Status)
	}
}

func TestAdminMessages_OpenLeavesRepliedAlone(t *testing.T) {
	id := uuid.New()
	repo := &mockMessageRepo{items: []contact.Message{{ID: id, Status: contact.StatusReplied}}}
	uc := NewAdminMessagesUsecase(repo, nil, nil)

	m, err := uc.Open(context.Background(), listview.NewWorkspace(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Status != contact.StatusReplied || len(repo.statuses) != 0 {
		t.Fatalf("replied message must not change, got %q", m.Status)
	}
}
