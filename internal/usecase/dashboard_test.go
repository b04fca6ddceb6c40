package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"elextrio-site/internal/domain"
)

type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

type mockClients int

func (m mockClients) ClientCount() int { return int(m) }

func newDashboard(messages *mockMessageRepo) *Dashboard {
	d := NewDashboardUsecase(DashboardDeps{
		Messages:     messages,
		Projects:     &mockProjectRepo{},
		Services:     &mockServiceRepo{},
		Jobs:         &mockJobRepo{},
		Applications: &mockApplicationRepo{},
		Database:     mockPinger{},
		Cache:        mockPinger{err: errors.New("redis unavailable")},
		Clients:      mockClients(2),
	})
	d.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func TestDashboard_Status(t *testing.T) {
	st, err := newDashboard(&mockMessageRepo{}).Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := domain.SiteStatus{
		TotalMessages:    10,
		NewMessages:      4,
		TotalProjects:    0,
		FeaturedProjects: 1,
		TotalServices:    6,
		FeaturedServices: 2,
		OpenJobs:         3,
		NewApplications:  2,
		DatabaseHealthy:  true,
		CacheHealthy:     false,
		ConnectedAdmins:  2,
		ServerTime:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if st != want {
		t.Fatalf("unexpected status:\n got %+v\nwant %+v", st, want)
	}
}

func TestDashboard_CountFailureFailsSummary(t *testing.T) {
	_, err := newDashboard(&mockMessageRepo{countErr: domain.NewStoreError("messages.count", errors.New("down"))}).Status(context.Background())
	if !domain.IsStore(err) {
		t.Fatalf("expected store error, got %v", err)
	}
}
