package usecase

import (
	"context"
	"log"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/repository"

	"github.com/google/uuid"
)

const UnknownJobTitle = "Unknown Job"

type ApplicationRow struct {
	job.Application
	JobTitle string `json:"job_title"`
}

type ApplicationPage struct {
	Items     []ApplicationRow    `json:"items"`
	Total     int                 `json:"total"`
	Query     listview.Query      `json:"query"`
	Options   map[string][]string `json:"options,omitempty"`
	JobTitles map[string]string   `json:"job_titles"`
}

type AdminApplications struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	notify RecordNotifier
	logger *log.Logger
}

func NewAdminApplicationsUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, notify RecordNotifier, logger *log.Logger) *AdminApplications {
	return &AdminApplications{apps: apps, jobs: jobs, notify: notify, logger: logger}
}

// ResolveJobTitle labels an application by its posting: general applications
// and postings that no longer exist get fixed labels.
func ResolveJobTitle(jobID *uuid.UUID, titles map[uuid.UUID]string) string {
	if jobID == nil {
		return job.GeneralApplicationTitle
	}
	if t, ok := titles[*jobID]; ok {
		return t
	}
	return UnknownJobTitle
}

func (u *AdminApplications) View(ctx context.Context, ws *listview.Workspace, req ViewRequest) (ApplicationPage, error) {
	t := ws.Applications
	if !t.Loaded() || req.Refresh {
		items, err := u.apps.List(ctx)
		if err != nil {
			return ApplicationPage{}, err
		}
		t.SetItems(items)
	}
	if err := applyViewRequest(t, req); err != nil {
		return ApplicationPage{}, err
	}

	titles, err := u.jobTitles(ctx, ws, req.Refresh)
	if err != nil {
		return ApplicationPage{}, err
	}

	base := pageOf(t)
	rows := make([]ApplicationRow, 0, len(base.Items))
	for _, a := range base.Items {
		rows = append(rows, ApplicationRow{Application: a, JobTitle: ResolveJobTitle(a.JobID, titles)})
	}

	labels := make(map[string]string, len(titles)+1)
	labels[listview.GeneralJobFilter] = job.GeneralApplicationTitle
	for id, title := range titles {
		labels[id.String()] = title
	}

	return ApplicationPage{
		Items:     rows,
		Total:     base.Total,
		Query:     base.Query,
		Options:   base.Options,
		JobTitles: labels,
	}, nil
}

// jobTitles reuses the session's job table when it is already loaded.
func (u *AdminApplications) jobTitles(ctx context.Context, ws *listview.Workspace, refresh bool) (map[uuid.UUID]string, error) {
	if !ws.Jobs.Loaded() || refresh {
		jobs, err := u.jobs.List(ctx)
		if err != nil {
			return nil, err
		}
		ws.Jobs.SetItems(jobs)
	}
	jobs := ws.Jobs.Items()
	out := make(map[uuid.UUID]string, len(jobs))
	for _, j := range jobs {
		out[j.ID] = j.Title
	}
	return out, nil
}

func (u *AdminApplications) Get(ctx context.Context, id uuid.UUID) (ApplicationRow, error) {
	a, err := u.apps.Get(ctx, id)
	if err != nil {
		return ApplicationRow{}, err
	}
	return ApplicationRow{Application: a, JobTitle: u.titleOf(ctx, a.JobID)}, nil
}

func (u *AdminApplications) ByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationRow, error) {
	apps, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	title := u.titleOf(ctx, &jobID)
	out := make([]ApplicationRow, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationRow{Application: a, JobTitle: title})
	}
	return out, nil
}

func (u *AdminApplications) titleOf(ctx context.Context, jobID *uuid.UUID) string {
	if jobID == nil {
		return job.GeneralApplicationTitle
	}
	j, err := u.jobs.Get(ctx, *jobID)
	if err != nil {
		if !domain.IsNotFound(err) && u.logger != nil {
			u.logger.Printf("[Applications] job title lookup failed job_id=%s err=%v", jobID, err)
		}
		return UnknownJobTitle
	}
	return j.Title
}

func (u *AdminApplications) UpdateStatus(ctx context.Context, ws *listview.Workspace, id uuid.UUID, status job.ApplicationStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "Invalid application status")
	}
	if err := u.apps.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	ws.Applications.Merge(id, func(a job.Application) job.Application {
		a.Status = status
		return a
	})
	if u.notify != nil {
		u.notify.RecordChanged("applications", "updated", id.String())
	}
	return nil
}
