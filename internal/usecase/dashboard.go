package usecase

import (
	"context"
	"log"
	"time"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/repository"

	"golang.org/x/sync/errgroup"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ClientCounter interface {
	ClientCount() int
}

type DashboardDeps struct {
	Messages     repository.MessageRepository
	Projects     repository.ProjectRepository
	Services     repository.ServiceRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Database     Pinger
	Cache        Pinger
	Clients      ClientCounter
	Logger       *log.Logger
}

type Dashboard struct {
	d   DashboardDeps
	now func() time.Time
}

func NewDashboardUsecase(d DashboardDeps) *Dashboard {
	return &Dashboard{d: d, now: time.Now}
}

// Status gathers every dashboard count concurrently. Any count failing fails
// the whole summary; health probes only flip their flag.
func (u *Dashboard) Status(ctx context.Context) (domain.SiteStatus, error) {
	var st domain.SiteStatus
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&st.TotalMessages, u.d.Messages.Count)
	count(&st.NewMessages, func(ctx context.Context) (int, error) {
		return u.d.Messages.CountByStatus(ctx, contact.StatusNew)
	})
	count(&st.TotalProjects, func(ctx context.Context) (int, error) { return u.d.Projects.Count(ctx, false) })
	count(&st.FeaturedProjects, func(ctx context.Context) (int, error) { return u.d.Projects.Count(ctx, true) })
	count(&st.TotalServices, func(ctx context.Context) (int, error) { return u.d.Services.Count(ctx, false) })
	count(&st.FeaturedServices, func(ctx context.Context) (int, error) { return u.d.Services.Count(ctx, true) })
	count(&st.OpenJobs, u.d.Jobs.CountOpen)
	count(&st.NewApplications, func(ctx context.Context) (int, error) {
		return u.d.Applications.CountByStatus(ctx, job.ApplicationNew)
	})

	g.Go(func() error {
		st.DatabaseHealthy = probe(gctx, u.d.Database)
		return nil
	})
	g.Go(func() error {
		st.CacheHealthy = probe(gctx, u.d.Cache)
		return nil
	})

	if err := g.Wait(); err != nil {
		if u.d.Logger != nil {
			u.d.Logger.Printf("[Dashboard] status failed err=%v", err)
		}
		return domain.SiteStatus{}, err
	}

	if u.d.Clients != nil {
		st.ConnectedAdmins = u.d.Clients.ClientCount()
	}
	st.ServerTime = u.now().UTC()
	return st, nil
}

func probe(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Ping(ctx) == nil
}
