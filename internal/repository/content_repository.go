package repository

import (
	"context"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/content"

	"github.com/google/uuid"
)

type ContentRepository interface {
	List(ctx context.Context) ([]content.WebContent, error)
	ListBySection(ctx context.Context, section content.Section) ([]content.WebContent, error)
	Get(ctx context.Context, id uuid.UUID) (content.WebContent, error)
	GetByKey(ctx context.Context, key string) (content.WebContent, error)
	Create(ctx context.Context, c content.WebContent) error
	Update(ctx context.Context, id uuid.UUID, p content.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Ensure inserts c unless a row with the same key already exists.
	Ensure(ctx context.Context, c content.WebContent) (bool, error)
}

type PostgresContentRepository struct {
	db database.DB
}

func NewPostgresContentRepository(db database.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

const contentColumns = `id, created_at, key, value, section, type`

func (r *PostgresContentRepository) List(ctx context.Context) ([]content.WebContent, error) {
	return collect(ctx, r.db, "web_content.list", scanContent,
		`SELECT `+contentColumns+` FROM web_content ORDER BY section ASC, key ASC`)
}

func (r *PostgresContentRepository) ListBySection(ctx context.Context, section content.Section) ([]content.WebContent, error) {
	return collect(ctx, r.db, "web_content.list_by_section", scanContent,
		`SELECT `+contentColumns+` FROM web_content WHERE section = $1 ORDER BY key ASC`,
		string(section),
	)
}

func (r *PostgresContentRepository) Get(ctx context.Context, id uuid.UUID) (content.WebContent, error) {
	c, err := scanContent(r.db.QueryRow(ctx, `SELECT `+contentColumns+` FROM web_content WHERE id = $1`, id))
	if err != nil {
		return content.WebContent{}, rowErr("web_content.get", "Content", id, err)
	}
	return c, nil
}

func (r *PostgresContentRepository) GetByKey(ctx context.Context, key string) (content.WebContent, error) {
	c, err := scanContent(r.db.QueryRow(ctx, `SELECT `+contentColumns+` FROM web_content WHERE key = $1`, key))
	if err != nil {
		if isNoRows(err) {
			return content.WebContent{}, domain.NewNotFoundError("Content", key)
		}
		return content.WebContent{}, storeErr("web_content.get_by_key", err)
	}
	return c, nil
}

func (r *PostgresContentRepository) Create(ctx context.Context, c content.WebContent) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO web_content (id, key, value, section, type) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Key, c.Value, string(c.Section), string(c.Type),
	)
	return storeErr("web_content.create", err)
}

func (r *PostgresContentRepository) Ensure(ctx context.Context, c content.WebContent) (bool, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	n, err := r.db.Exec(ctx,
		`INSERT INTO web_content (id, key, value, section, type) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (key) DO NOTHING`,
		c.ID, c.Key, c.Value, string(c.Section), string(c.Type),
	)
	if err != nil {
		return false, storeErr("web_content.ensure", err)
	}
	return n > 0, nil
}

func (r *PostgresContentRepository) Update(ctx context.Context, id uuid.UUID, p content.Patch) error {
	var s setClause
	if p.Key != nil {
		s.set("key", *p.Key)
	}
	if p.Value != nil {
		s.set("value", *p.Value)
	}
	if p.Section != nil {
		s.set("section", string(*p.Section))
	}
	if p.Type != nil {
		s.set("type", string(*p.Type))
	}
	return execUpdate(ctx, r.db, "web_content", "Content", id, &s)
}

func (r *PostgresContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, "web_content", "Content", id)
}

func scanContent(row database.Row) (content.WebContent, error) {
	var (
		c       content.WebContent
		section string
		typ     string
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.Key, &c.Value, &section, &typ); err != nil {
		return content.WebContent{}, err
	}
	c.Section = content.Section(section)
	c.Type = content.Type(typ)
	return c, nil
}
