package repository

import (
	"context"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/job"

	"github.com/google/uuid"
)

// ApplicationRepository has no Delete: applications are only ever re-statused.
type ApplicationRepository interface {
	List(ctx context.Context) ([]job.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]job.Application, error)
	Get(ctx context.Context, id uuid.UUID) (job.Application, error)
	Create(ctx context.Context, a job.Application) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.ApplicationStatus) error
	CountByStatus(ctx context.Context, status job.ApplicationStatus) (int, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, created_at, job_id, first_name, last_name, email,
	COALESCE(phone, ''), resume_url, COALESCE(cover_letter_url, ''), COALESCE(message, ''), status`

func (r *PostgresApplicationRepository) List(ctx context.Context) ([]job.Application, error) {
	return collect(ctx, r.db, "applications.list", scanApplication,
		`SELECT `+applicationColumns+` FROM job_applications ORDER BY created_at DESC`)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]job.Application, error) {
	return collect(ctx, r.db, "applications.list_by_job", scanApplication,
		`SELECT `+applicationColumns+` FROM job_applications WHERE job_id = $1 ORDER BY created_at DESC`,
		jobID,
	)
}

func (r *PostgresApplicationRepository) Get(ctx context.Context, id uuid.UUID) (job.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		return job.Application{}, rowErr("applications.get", "Application", id, err)
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a job.Application) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = job.ApplicationNew
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, job_id, first_name, last_name, email, phone,
			resume_url, cover_letter_url, message, status)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''), $10)`,
		a.ID, a.JobID, a.FirstName, a.LastName, a.Email, a.Phone,
		a.ResumeURL, a.CoverLetterURL, a.Message, string(a.Status),
	)
	return storeErr("applications.create", err)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.ApplicationStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "Invalid application status")
	}
	n, err := r.db.Exec(ctx, `UPDATE job_applications SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return storeErr("applications.update_status", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("Application", id.String())
	}
	return nil
}

func (r *PostgresApplicationRepository) CountByStatus(ctx context.Context, status job.ApplicationStatus) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications WHERE status = $1`, string(status)).Scan(&n); err != nil {
		return 0, storeErr("applications.count", err)
	}
	return n, nil
}

func scanApplication(row database.Row) (job.Application, error) {
	var (
		a      job.Application
		status string
	)
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.JobID, &a.FirstName, &a.LastName, &a.Email,
		&a.Phone, &a.ResumeURL, &a.CoverLetterURL, &a.Message, &status,
	)
	if err != nil {
		return job.Application{}, err
	}
	a.Status = job.ApplicationStatus(status)
	return a, nil
}
