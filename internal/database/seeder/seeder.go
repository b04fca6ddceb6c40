package seeder

import (
	"context"

	"elextrio-site/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
