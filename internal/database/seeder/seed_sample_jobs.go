package seeder

import (
	"context"
	"fmt"

	"elextrio-site/internal/database"
	"elextrio-site/internal/usecase"
)

// SampleJobsSeeder stores the built-in sample postings as real rows so a
// fresh database has something to edit.
type SampleJobsSeeder struct{}

func (SampleJobsSeeder) Name() string { return "sample_jobs" }

func (SampleJobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "department", "location", "type", "description", "requirements", "post_date", "status", "featured"); err != nil {
		return err
	}

	jobs, err := usecase.LoadFallbackJobs()
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, j := range jobs {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO jobs (id, title, department, location, type, description, requirements, post_date, status, featured)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10)
				 ON CONFLICT (id) DO NOTHING`,
				j.ID, j.Title, j.Department, j.Location, j.Type, j.Description, j.Requirements, j.PostDate, string(j.Status), j.Featured,
			); err != nil {
				return fmt.Errorf("insert %s: %w", j.Title, err)
			}
		}
		return nil
	})
}
