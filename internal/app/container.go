package app

import (
	"context"
	"errors"
	"log"
	"time"

	"elextrio-site/internal/config"
	"elextrio-site/internal/database"
	dbpostgres "elextrio-site/internal/database/postgres"
	"elextrio-site/internal/infrastructure/backup"
	"elextrio-site/internal/infrastructure/cache"
	"elextrio-site/internal/infrastructure/email"
	"elextrio-site/internal/infrastructure/metrics"
	"elextrio-site/internal/infrastructure/storage"
	"elextrio-site/internal/infrastructure/supabase"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/jwt"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/repository"
	"elextrio-site/internal/usecase"
	ucauth "elextrio-site/internal/usecase/auth"
	"elextrio-site/internal/ws"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB         database.DB
	Cache      *cache.Redis
	Metrics    *metrics.Metrics
	Hub        *ws.Hub
	Notifier   *ws.Notifier
	Workspaces *listview.WorkspaceStore
	Objects    storage.ObjectStore
	Mailer     *email.ResendSender
	Backup     *backup.FileStore
	Tokens     *jwt.HMACService
	Validator  *validate.Validator

	Repos Repositories

	Public          *usecase.PublicContent
	Collections     usecase.AdminCollections
	Applications    *usecase.AdminApplications
	Messages        *usecase.AdminMessages
	Dashboard       *usecase.Dashboard
	Contact         *usecase.ContactPipeline
	ApplicationDeps usecase.ApplicationDeps
	Auth            *ucauth.Service

	cancel  context.CancelFunc
	closers []func() error
}

type Repositories struct {
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Messages     repository.MessageRepository
	Projects     repository.ProjectRepository
	Services     repository.ServiceRepository
	Industries   repository.IndustryRepository
	Content      repository.ContentRepository
}

func NewRepositories(db database.DB) Repositories {
	return Repositories{
		Jobs:         repository.NewPostgresJobRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Messages:     repository.NewPostgresMessageRepository(db),
		Projects:     repository.NewPostgresProjectRepository(db),
		Services:     repository.NewPostgresServiceRepository(db),
		Industries:   repository.NewPostgresIndustryRepository(db),
		Content:      repository.NewPostgresContentRepository(db),
	}
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Cache:      cache.NewRedis(cfg.Redis, logger),
		Metrics:    metrics.New(),
		Hub:        ws.NewHub(logger),
		Workspaces: listview.NewWorkspaceStore(cfg.App.WorkspaceIdle, logger),
		Mailer:     email.NewResendSender(cfg.Email, logger),
		Backup:     backup.NewFileStore(cfg.Contact.BackupFile),
		Tokens:     jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Audience, cfg.JWT.AccessExpiresIn),
		Validator:  validate.New(),
		Repos:      NewRepositories(db),
	}
	c.closers = append(c.closers, db.Close)
	c.Notifier = ws.NewNotifier(c.Hub)

	objects, err := newObjectStore(ctx, cfg, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Objects = objects
	if cl, ok := objects.(interface{ Close() error }); ok {
		c.closers = append(c.closers, cl.Close)
	}

	if err := c.buildUsecases(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) buildUsecases() error {
	r := c.Repos

	public, err := usecase.NewPublicContentUsecase(usecase.PublicContentDeps{
		Jobs:       r.Jobs,
		Projects:   r.Projects,
		Services:   r.Services,
		Industries: r.Industries,
		Content:    r.Content,
		Cache:      c.Cache,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}
	c.Public = public

	c.Collections = usecase.NewAdminCollections(usecase.AdminCollectionDeps{
		Jobs:       r.Jobs,
		Projects:   r.Projects,
		Services:   r.Services,
		Industries: r.Industries,
		Content:    r.Content,
		Cache:      c.Cache,
		Notify:     c.Notifier,
		Logger:     c.Logger,
	})
	c.Applications = usecase.NewAdminApplicationsUsecase(r.Applications, r.Jobs, c.Notifier, c.Logger)
	c.Messages = usecase.NewAdminMessagesUsecase(r.Messages, c.Notifier, c.Logger)

	c.Dashboard = usecase.NewDashboardUsecase(usecase.DashboardDeps{
		Messages:     r.Messages,
		Projects:     r.Projects,
		Services:     r.Services,
		Jobs:         r.Jobs,
		Applications: r.Applications,
		Database:     c.DB,
		Cache:        c.Cache,
		Clients:      c.Hub,
		Logger:       c.Logger,
	})

	c.Contact = usecase.NewContactPipeline(usecase.ContactDeps{
		Messages:  r.Messages,
		Backup:    c.Backup,
		Mailer:    c.Mailer,
		Notify:    c.Notifier,
		Metrics:   c.Metrics,
		Validator: c.Validator,
		Logger:    c.Logger,
	})

	c.ApplicationDeps = usecase.ApplicationDeps{
		Objects:      c.Objects,
		Bucket:       c.Config.Storage.Bucket,
		Applications: r.Applications,
		Notify:       c.Notifier,
		Metrics:      c.Metrics,
		Logger:       c.Logger,
	}

	c.Auth = ucauth.NewService(newAuthProvider(c.Config, c.Tokens, c.Logger), c.Tokens, c.Workspaces, c.Logger)
	return nil
}

// Start runs the websocket hub and the idle workspace sweeper until Close.
func (c *Container) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.Hub.Run(ctx)
	go c.Workspaces.Run(ctx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newObjectStore(ctx context.Context, cfg config.Config, logger *log.Logger) (storage.ObjectStore, error) {
	switch cfg.Storage.Driver {
	case "gcs":
		logger.Printf("[Storage] driver=gcs bucket=%s", cfg.Storage.Bucket)
		return storage.NewGCSStore(ctx, cfg.Storage.GCSCredentialsFile, cfg.Storage.PublicBaseURL)
	default:
		key := cfg.Supabase.ServiceKey
		if key == "" {
			key = cfg.Supabase.AnonKey
		}
		logger.Printf("[Storage] driver=supabase bucket=%s", cfg.Storage.Bucket)
		return storage.NewSupabaseStore(cfg.Supabase.StorageBase(), key, cfg.Storage.UploadTimeout), nil
	}
}

// newAuthProvider prefers Supabase Auth, then the local admin credential.
// With neither configured every login is rejected.
func newAuthProvider(cfg config.Config, tokens *jwt.HMACService, logger *log.Logger) ucauth.Provider {
	switch {
	case cfg.Supabase.Enabled():
		logger.Printf("[Auth] provider=supabase")
		return supabase.NewAuthClient(cfg.Supabase.AuthBase(), cfg.Supabase.AnonKey, 15*time.Second)
	case cfg.Admin.Email != "" && cfg.Admin.PasswordHash != "":
		logger.Printf("[Auth] provider=local email=%s", cfg.Admin.Email)
		return ucauth.NewLocalProvider(cfg.Admin.Email, cfg.Admin.PasswordHash, tokens)
	default:
		logger.Printf("[Auth] no provider configured, admin login disabled")
		return nil
	}
}
