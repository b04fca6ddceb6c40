package repository

import (
	"context"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain/catalog"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]catalog.Project, error)
	ListFeatured(ctx context.Context) ([]catalog.Project, error)
	Get(ctx context.Context, id uuid.UUID) (catalog.Project, error)
	Create(ctx context.Context, p catalog.Project) error
	Update(ctx context.Context, id uuid.UUID, p catalog.ProjectPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, featuredOnly bool) (int, error)
}

type ServiceRepository interface {
	List(ctx context.Context) ([]catalog.Service, error)
	ListFeatured(ctx context.Context) ([]catalog.Service, error)
	Get(ctx context.Context, id uuid.UUID) (catalog.Service, error)
	Create(ctx context.Context, s catalog.Service) error
	Update(ctx context.Context, id uuid.UUID, p catalog.ServicePatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, featuredOnly bool) (int, error)
}

type IndustryRepository interface {
	List(ctx context.Context) ([]catalog.Industry, error)
	Get(ctx context.Context, id uuid.UUID) (catalog.Industry, error)
	Create(ctx context.Context, in catalog.Industry) error
	Update(ctx context.Context, id uuid.UUID, p catalog.IndustryPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, created_at, title, summary, description, industry,
	COALESCE(client, ''), featured, COALESCE(image_url, '')`

func (r *PostgresProjectRepository) List(ctx context.Context) ([]catalog.Project, error) {
	return collect(ctx, r.db, "projects.list", scanProject,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
}

func (r *PostgresProjectRepository) ListFeatured(ctx context.Context) ([]catalog.Project, error) {
	return collect(ctx, r.db, "projects.list_featured", scanProject,
		`SELECT `+projectColumns+` FROM projects WHERE featured ORDER BY created_at DESC`)
}

func (r *PostgresProjectRepository) Get(ctx context.Context, id uuid.UUID) (catalog.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return catalog.Project{}, rowErr("projects.get", "Project", id, err)
	}
	return p, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p catalog.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (id, title, summary, description, industry, client, featured, image_url)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''))`,
		p.ID, p.Title, p.Summary, p.Description, p.Industry, p.Client, p.Featured, p.ImageURL,
	)
	return storeErr("projects.create", err)
}

func (r *PostgresProjectRepository) Update(ctx context.Context, id uuid.UUID, p catalog.ProjectPatch) error {
	var s setClause
	if p.Title != nil {
		s.set("title", *p.Title)
	}
	if p.Summary != nil {
		s.set("summary", *p.Summary)
	}
	if p.Description != nil {
		s.set("description", *p.Description)
	}
	if p.Industry != nil {
		s.set("industry", *p.Industry)
	}
	if p.Client != nil {
		s.setExpr("client", "NULLIF(%s, '')", *p.Client)
	}
	if p.Featured != nil {
		s.set("featured", *p.Featured)
	}
	if p.ImageURL != nil {
		s.setExpr("image_url", "NULLIF(%s, '')", *p.ImageURL)
	}
	return execUpdate(ctx, r.db, "projects", "Project", id, &s)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, "projects", "Project", id)
}

func (r *PostgresProjectRepository) Count(ctx context.Context, featuredOnly bool) (int, error) {
	return count(ctx, r.db, "projects", featuredOnly)
}

func scanProject(row database.Row) (catalog.Project, error) {
	var p catalog.Project
	err := row.Scan(&p.ID, &p.CreatedAt, &p.Title, &p.Summary, &p.Description, &p.Industry, &p.Client, &p.Featured, &p.ImageURL)
	return p, err
}

type PostgresServiceRepository struct {
	db database.DB
}

func NewPostgresServiceRepository(db database.DB) *PostgresServiceRepository {
	return &PostgresServiceRepository{db: db}
}

const serviceColumns = `id, created_at, title, short_description, description, COALESCE(icon, ''), featured`

func (r *PostgresServiceRepository) List(ctx context.Context) ([]catalog.Service, error) {
	return collect(ctx, r.db, "services.list", scanService,
		`SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC`)
}

func (r *PostgresServiceRepository) ListFeatured(ctx context.Context) ([]catalog.Service, error) {
	return collect(ctx, r.db, "services.list_featured", scanService,
		`SELECT `+serviceColumns+` FROM services WHERE featured ORDER BY created_at DESC`)
}

func (r *PostgresServiceRepository) Get(ctx context.Context, id uuid.UUID) (catalog.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return catalog.Service{}, rowErr("services.get", "Service", id, err)
	}
	return s, nil
}

func (r *PostgresServiceRepository) Create(ctx context.Context, s catalog.Service) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO services (id, title, short_description, description, icon, featured)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`,
		s.ID, s.Title, s.ShortDescription, s.Description, s.Icon, s.Featured,
	)
	return storeErr("services.create", err)
}

func (r *PostgresServiceRepository) Update(ctx context.Context, id uuid.UUID, p catalog.ServicePatch) error {
	var s setClause
	if p.Title != nil {
		s.set("title", *p.Title)
	}
	if p.ShortDescription != nil {
		s.set("short_description", *p.ShortDescription)
	}
	if p.Description != nil {
		s.set("description", *p.Description)
	}
	if p.Icon != nil {
		s.setExpr("icon", "NULLIF(%s, '')", *p.Icon)
	}
	if p.Featured != nil {
		s.set("featured", *p.Featured)
	}
	return execUpdate(ctx, r.db, "services", "Service", id, &s)
}

func (r *PostgresServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, "services", "Service", id)
}

func (r *PostgresServiceRepository) Count(ctx context.Context, featuredOnly bool) (int, error) {
	return count(ctx, r.db, "services", featuredOnly)
}

func scanService(row database.Row) (catalog.Service, error) {
	var s catalog.Service
	err := row.Scan(&s.ID, &s.CreatedAt, &s.Title, &s.ShortDescription, &s.Description, &s.Icon, &s.Featured)
	return s, err
}

type PostgresIndustryRepository struct {
	db database.DB
}

func NewPostgresIndustryRepository(db database.DB) *PostgresIndustryRepository {
	return &PostgresIndustryRepository{db: db}
}

const industryColumns = `id, created_at, name, description, COALESCE(icon, ''), applications, COALESCE(image_url, '')`

func (r *PostgresIndustryRepository) List(ctx context.Context) ([]catalog.Industry, error) {
	return collect(ctx, r.db, "industries.list", scanIndustry,
		`SELECT `+industryColumns+` FROM industries ORDER BY name ASC`)
}

func (r *PostgresIndustryRepository) Get(ctx context.Context, id uuid.UUID) (catalog.Industry, error) {
	in, err := scanIndustry(r.db.QueryRow(ctx, `SELECT `+industryColumns+` FROM industries WHERE id = $1`, id))
	if err != nil {
		return catalog.Industry{}, rowErr("industries.get", "Industry", id, err)
	}
	return in, nil
}

func (r *PostgresIndustryRepository) Create(ctx context.Context, in catalog.Industry) error {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO industries (id, name, description, icon, applications, image_url)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))`,
		in.ID, in.Name, in.Description, in.Icon, stringSlice(in.Applications), in.ImageURL,
	)
	return storeErr("industries.create", err)
}

func (r *PostgresIndustryRepository) Update(ctx context.Context, id uuid.UUID, p catalog.IndustryPatch) error {
	var s setClause
	if p.Name != nil {
		s.set("name", *p.Name)
	}
	if p.Description != nil {
		s.set("description", *p.Description)
	}
	if p.Icon != nil {
		s.setExpr("icon", "NULLIF(%s, '')", *p.Icon)
	}
	if p.Applications != nil {
		s.set("applications", stringSlice(*p.Applications))
	}
	if p.ImageURL != nil {
		s.setExpr("image_url", "NULLIF(%s, '')", *p.ImageURL)
	}
	return execUpdate(ctx, r.db, "industries", "Industry", id, &s)
}

func (r *PostgresIndustryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, "industries", "Industry", id)
}

func scanIndustry(row database.Row) (catalog.Industry, error) {
	var in catalog.Industry
	err := row.Scan(&in.ID, &in.CreatedAt, &in.Name, &in.Description, &in.Icon, &in.Applications, &in.ImageURL)
	return in, err
}
