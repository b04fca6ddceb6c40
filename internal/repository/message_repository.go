package repository

import (
	"context"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"

	"github.com/google/uuid"
)

type MessageRepository interface {
	List(ctx context.Context) ([]contact.Message, error)
	Get(ctx context.Context, id uuid.UUID) (contact.Message, error)
	Create(ctx context.Context, m contact.Message) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status contact.Status) (int, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

const messageColumns = `id, created_at, name, email, COALESCE(phone, ''), COALESCE(company, ''), message, status`

func (r *PostgresMessageRepository) List(ctx context.Context) ([]contact.Message, error) {
	return collect(ctx, r.db, "messages.list", scanMessage,
		`SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC`)
}

func (r *PostgresMessageRepository) Get(ctx context.Context, id uuid.UUID) (contact.Message, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, `SELECT `+messageColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		return contact.Message{}, rowErr("messages.get", "Message", id, err)
	}
	return m, nil
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m contact.Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = contact.StatusNew
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, company, message, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`,
		m.ID, m.Name, m.Email, m.Phone, m.Company, m.Message, string(m.Status),
	)
	return storeErr("messages.create", err)
}

func (r *PostgresMessageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "Invalid message status")
	}
	n, err := r.db.Exec(ctx, `UPDATE contact_messages SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return storeErr("messages.update_status", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("Message", id.String())
	}
	return nil
}

func (r *PostgresMessageRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, storeErr("messages.count", err)
	}
	return n, nil
}

func (r *PostgresMessageRepository) CountByStatus(ctx context.Context, status contact.Status) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE status = $1`, string(status)).Scan(&n); err != nil {
		return 0, storeErr("messages.count", err)
	}
	return n, nil
}

func scanMessage(row database.Row) (contact.Message, error) {
	var (
		m      contact.Message
		status string
	)
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Message, &status); err != nil {
		return contact.Message{}, err
	}
	m.Status = contact.Status(status)
	return m, nil
}
