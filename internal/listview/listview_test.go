package listview

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/job"

	"github.com/google/uuid"
)

func sampleJobs() []job.Job {
	return []job.Job{
		{ID: uuid.New(), Title: "Electrical Engineer", Department: "Engineering", Location: "Dubai", Status: job.StatusOpen, PostDate: "2024-03-01"},
		{ID: uuid.New(), Title: "Project Manager", Department: "Operations", Location: "Abu Dhabi", Status: job.StatusDraft, PostDate: "2024-01-15"},
		{ID: uuid.New(), Title: "Site Engineer", Department: "Engineering", Location: "Sharjah", Status: job.StatusClosed, PostDate: ""},
		{ID: uuid.New(), Title: "accountant", Department: "Finance", Location: "Dubai", Status: job.StatusOpen, PostDate: "not a date"},
		{ID: uuid.New(), Title: "HSE Officer", Department: "Operations", Location: "Dubai", Status: job.StatusOpen, PostDate: "2024-02-10"},
	}
}

func titles(js []job.Job) []string {
	out := make([]string, len(js))
	for i, j := range js {
		out[i] = j.Title
	}
	return out
}

func TestApply_FilteredViewIsExactSubset(t *testing.T) {
	items := sampleJobs()
	schema := JobSchema()

	queries := []Query{
		{},
		{Search: "ENGINEER"},
		{Filters: map[string]string{"status": "open"}},
		{Filters: map[string]string{"status": "open", "department": "Operations"}},
		{Search: "dubai", Filters: map[string]string{"status": "all", "department": ""}},
		{Search: "nothing matches"},
	}

	for _, q := range queries {
		got := Apply(items, schema, q)
		inView := map[uuid.UUID]bool{}
		for _, j := range got {
			inView[j.ID] = true
		}
		for _, j := range items {
			if matches(j, schema, q) != inView[j.ID] {
				t.Fatalf("query %+v: row %q membership mismatch", q, j.Title)
			}
		}
		if len(got) != len(inView) {
			t.Fatalf("query %+v: duplicate rows in view", q)
		}
	}
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Apply(sampleJobs(), JobSchema(), Query{Search: "aCCount"})
	if len(got) != 1 || got[0].Title != "accountant" {
		t.Fatalf("unexpected rows: %v", titles(got))
	}
}

func TestApply_DescendingIsReverseOfAscending(t *testing.T) {
	items := sampleJobs()
	for field := range JobSchema().Columns {
		asc := Apply(items, JobSchema(), Query{Sort: Sort{Field: field}})
		desc := Apply(items, JobSchema(), Query{Sort: Sort{Field: field, Desc: true}})
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Fatalf("field %s: desc is not the reverse of asc", field)
			}
		}
	}
}

func TestApply_UnparseableDatesSortAsEpochZero(t *testing.T) {
	got := Apply(sampleJobs(), JobSchema(), Query{Sort: Sort{Field: "post_date"}})
	want := []string{"Site Engineer", "accountant", "Project Manager", "HSE Officer", "Electrical Engineer"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("unexpected order: %v", titles(got))
	}
}

func TestApply_StringSortIsCollated(t *testing.T) {
	got := Apply(sampleJobs(), JobSchema(), Query{Sort: Sort{Field: "title"}})
	if got[0].Title != "accountant" {
		t.Fatalf("lowercase title should collate first, got %v", titles(got))
	}
}

func TestTable_ToggleSortReversesPreviousOutput(t *testing.T) {
	tbl := NewTable(JobSchema())
	tbl.SetItems(sampleJobs())

	if err := tbl.ToggleSort("title"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	first := titles(tbl.View())
	if err := tbl.ToggleSort("title"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second := titles(tbl.View())

	for i := range first {
		if first[i] != second[len(second)-1-i] {
			t.Fatalf("second toggle did not reverse: %v vs %v", first, second)
		}
	}
	if q := tbl.Query(); q.Sort.Field != "title" || !q.Sort.Desc {
		t.Fatalf("unexpected sort state %+v", q.Sort)
	}

	if err := tbl.ToggleSort("location"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q := tbl.Query(); q.Sort.Desc {
		t.Fatalf("new column must start ascending")
	}
	if err := tbl.ToggleSort("salary"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected unknown column, got %v", err)
	}
}

func TestTable_TwoStepDelete(t *testing.T) {
	items := sampleJobs()
	tbl := NewTable(JobSchema())
	tbl.SetItems(items)
	target := items[1].ID

	calls := 0
	del := func(context.Context, uuid.UUID) error {
		calls++
		return nil
	}

	if err := tbl.ConfirmDelete(context.Background(), target, del); !errors.Is(err, ErrNotArmed) {
		t.Fatalf("expected ErrNotArmed, got %v", err)
	}

	if err := tbl.RequestDelete(target); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	tbl.CancelDelete()
	if _, armed := tbl.PendingDelete(); armed {
		t.Fatalf("cancel must disarm")
	}
	if err := tbl.ConfirmDelete(context.Background(), target, del); !errors.Is(err, ErrNotArmed) {
		t.Fatalf("expected ErrNotArmed after cancel, got %v", err)
	}

	_ = tbl.RequestDelete(target)
	if err := tbl.ConfirmDelete(context.Background(), target, del); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one store delete, got %d", calls)
	}
	if _, ok := tbl.Find(target); ok {
		t.Fatalf("deleted row still present")
	}
	if tbl.Len() != len(items)-1 {
		t.Fatalf("expected %d rows, got %d", len(items)-1, tbl.Len())
	}
}

func TestTable_FailedDeleteKeepsRowArmed(t *testing.T) {
	items := sampleJobs()
	tbl := NewTable(JobSchema())
	tbl.SetItems(items)
	target := items[0].ID
	_ = tbl.RequestDelete(target)

	boom := errors.New("permission denied for table jobs")
	err := tbl.ConfirmDelete(context.Background(), target, func(context.Context, uuid.UUID) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if _, ok := tbl.Find(target); !ok {
		t.Fatalf("row must remain after a failed delete")
	}
	if id, armed := tbl.PendingDelete(); !armed || id != target {
		t.Fatalf("row must stay armed after a failed delete")
	}
}

func TestTable_RequestDeleteUnknownRow(t *testing.T) {
	tbl := NewTable(JobSchema())
	tbl.SetItems(sampleJobs())
	if err := tbl.RequestDelete(uuid.New()); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTable_MergeUpdatesInPlace(t *testing.T) {
	items := sampleJobs()
	tbl := NewTable(JobSchema())
	tbl.SetItems(items)

	ok := tbl.Merge(items[2].ID, func(j job.Job) job.Job {
		j.Status = job.StatusOpen
		return j
	})
	if !ok {
		t.Fatalf("expected merge to find the row")
	}
	_ = tbl.SetFilter("status", "open")
	if got := len(tbl.View()); got != 4 {
		t.Fatalf("expected 4 open jobs after merge, got %d", got)
	}
	if tbl.Merge(uuid.New(), func(j job.Job) job.Job { return j }) {
		t.Fatalf("merge of unknown row must report false")
	}
}

func TestTable_Distinct(t *testing.T) {
	tbl := NewTable(JobSchema())
	tbl.SetItems(sampleJobs())
	want := []string{"Engineering", "Finance", "Operations"}
	if got := tbl.Distinct("department"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected departments: %v", got)
	}
}

func TestApplicationSchema_GeneralFilter(t *testing.T) {
	jobID := uuid.New()
	items := []job.Application{
		{ID: uuid.New(), FirstName: "Ada", JobID: &jobID},
		{ID: uuid.New(), FirstName: "Grace"},
	}
	got := Apply(items, ApplicationSchema(), Query{Filters: map[string]string{"job": GeneralJobFilter}})
	if len(got) != 1 || got[0].FirstName != "Grace" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	got = Apply(items, ApplicationSchema(), Query{Filters: map[string]string{"job": jobID.String()}})
	if len(got) != 1 || got[0].FirstName != "Ada" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestWorkspaceStore_SweepEvictsIdle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewWorkspaceStore(10*time.Minute, nil)
	s.now = func() time.Time { return now }

	a := s.Get("a")
	a.Messages.SetItems([]contact.Message{{ID: uuid.New(), Name: "x"}})
	now = now.Add(5 * time.Minute)
	s.Get("b")
	now = now.Add(6 * time.Minute)

	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 workspace left, got %d", s.Len())
	}
	if s.Get("a").Messages.Loaded() {
		t.Fatalf("evicted workspace must start fresh")
	}
}
