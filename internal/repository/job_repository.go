package repository

import (
	"context"
	"strings"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	List(ctx context.Context) ([]job.Job, error)
	ListOpen(ctx context.Context) ([]job.Job, error)
	ListFeatured(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, id uuid.UUID, p job.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountOpen(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, created_at, title, department, location, type, description,
	requirements, responsibilities, qualifications, benefits,
	post_date::text, COALESCE(expiry_date::text, ''), status, featured`

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	return collect(ctx, r.db, "jobs.list", scanJob, `SELECT `+jobColumns+` FROM jobs ORDER BY post_date DESC, created_at DESC`)
}

func (r *PostgresJobRepository) ListOpen(ctx context.Context) ([]job.Job, error) {
	return collect(ctx, r.db, "jobs.list_open", scanJob,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY post_date DESC, created_at DESC`,
		string(job.StatusOpen),
	)
}

func (r *PostgresJobRepository) ListFeatured(ctx context.Context) ([]job.Job, error) {
	return collect(ctx, r.db, "jobs.list_featured", scanJob,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 AND featured ORDER BY post_date DESC, created_at DESC`,
		string(job.StatusOpen),
	)
}

func (r *PostgresJobRepository) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		return job.Job{}, rowErr("jobs.get", "Job", id, err)
	}
	return j, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	if err := requireNonEmpty(j.Requirements); err != nil {
		return err
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = job.StatusDraft
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, department, location, type, description,
			requirements, responsibilities, qualifications, benefits,
			post_date, expiry_date, status, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			COALESCE(NULLIF($11, '')::date, CURRENT_DATE), NULLIF($12, '')::date, $13, $14)`,
		j.ID, j.Title, j.Department, j.Location, j.Type, j.Description,
		stringSlice(j.Requirements), stringSlice(j.Responsibilities),
		stringSlice(j.Qualifications), stringSlice(j.Benefits),
		j.PostDate, j.ExpiryDate, string(j.Status), j.Featured,
	)
	return storeErr("jobs.create", err)
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, p job.Patch) error {
	var s setClause
	if p.Title != nil {
		s.set("title", *p.Title)
	}
	if p.Department != nil {
		s.set("department", *p.Department)
	}
	if p.Location != nil {
		s.set("location", *p.Location)
	}
	if p.Type != nil {
		s.set("type", *p.Type)
	}
	if p.Description != nil {
		s.set("description", *p.Description)
	}
	if p.Requirements != nil {
		if err := requireNonEmpty(*p.Requirements); err != nil {
			return err
		}
		s.set("requirements", *p.Requirements)
	}
	if p.Responsibilities != nil {
		s.set("responsibilities", stringSlice(*p.Responsibilities))
	}
	if p.Qualifications != nil {
		s.set("qualifications", stringSlice(*p.Qualifications))
	}
	if p.Benefits != nil {
		s.set("benefits", stringSlice(*p.Benefits))
	}
	if p.PostDate != nil {
		s.setExpr("post_date", "%s::date", *p.PostDate)
	}
	if p.ExpiryDate != nil {
		s.setExpr("expiry_date", "NULLIF(%s, '')::date", *p.ExpiryDate)
	}
	if p.Status != nil {
		s.set("status", string(*p.Status))
	}
	if p.Featured != nil {
		s.set("featured", *p.Featured)
	}
	return execUpdate(ctx, r.db, "jobs", "Job", id, &s)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, "jobs", "Job", id)
}

func (r *PostgresJobRepository) CountOpen(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = $1`, string(job.StatusOpen)).Scan(&n); err != nil {
		return 0, storeErr("jobs.count_open", err)
	}
	return n, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j      job.Job
		status string
	)
	err := row.Scan(
		&j.ID, &j.CreatedAt, &j.Title, &j.Department, &j.Location, &j.Type, &j.Description,
		&j.Requirements, &j.Responsibilities, &j.Qualifications, &j.Benefits,
		&j.PostDate, &j.ExpiryDate, &status, &j.Featured,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	return j, nil
}

func requireNonEmpty(reqs []string) error {
	for _, r := range reqs {
		if strings.TrimSpace(r) != "" {
			return nil
		}
	}
	return domain.NewValidationError("requirements", "At least one requirement is required")
}
