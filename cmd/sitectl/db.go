package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"elextrio-site/internal/config"
	"elextrio-site/internal/database"
	"elextrio-site/internal/database/migration"
	dbpostgres "elextrio-site/internal/database/postgres"
	"elextrio-site/internal/database/seeder"
	"elextrio-site/migrations"

	"github.com/spf13/cobra"
)

var migrateFromDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg config.Config, db database.DB) error {
			r := migration.Runner{FS: migrations.FS, Logger: log.New(os.Stdout, "", log.LstdFlags)}
			dir := migrateFromDir
			if dir == "" {
				dir = cfg.Database.MigrationsDir
			}
			if dir != "" {
				r = migration.Runner{Dir: dir, Logger: r.Logger}
			}
			n, err := r.Run(ctx, db.SQLDB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert default web content and sample job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, db database.DB) error {
			seeders := seeder.Defaults()
			if err := (seeder.Runner{Seeders: seeders}).Run(ctx, db); err != nil {
				return err
			}
			for _, s := range seeders {
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", s.Name())
			}
			return nil
		})
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFromDir, "dir", "", "read migrations from this directory (defaults to MIGRATIONS_DIR, then the embedded set)")
}

func withDB(parent context.Context, fn func(ctx context.Context, cfg config.Config, db database.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}

	connectCtx, cancel := context.WithTimeout(parent, 15*time.Second)
	defer cancel()
	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	ctx, cancelRun := context.WithTimeout(parent, 5*time.Minute)
	defer cancelRun()
	return fn(ctx, cfg, db)
}
