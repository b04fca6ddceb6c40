package usecase

import (
	"context"
	"log"
	"strings"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"

	"github.com/google/uuid"
)

const (
	ContactRequiredMessage = "Name, email, and message are required"
	ContactSuccessMessage  = "Form submitted successfully"
)

type MessageCreator interface {
	Create(ctx context.Context, m contact.Message) error
}

type BackupStore interface {
	Append(sub contact.Submission) (contact.BackupEntry, error)
	All() ([]contact.BackupEntry, error)
}

type ContactMailer interface {
	SendContactNotification(ctx context.Context, sub contact.Submission) (bool, error)
}

type MessageNotifier interface {
	MessageReceived(m contact.Message)
}

type ContactRecorder interface {
	ContactSubmitted(stored, emailed bool)
}

type StructValidator interface {
	Fields(s any) []string
}

type ContactResult struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message"`
	EmailSent        bool                `json:"emailSent"`
	SavedMessage     contact.BackupEntry `json:"savedMessage"`
	StoredInSupabase bool                `json:"storedInSupabase"`
}

type ContactDeps struct {
	Messages  MessageCreator
	Backup    BackupStore
	Mailer    ContactMailer
	Notify    MessageNotifier
	Metrics   ContactRecorder
	Validator StructValidator
	Logger    *log.Logger
}

// ContactPipeline stores a submission three ways: the message table, the local
// backup file and a notification email. Only the backup file is required to succeed.
type ContactPipeline struct {
	d ContactDeps
}

func NewContactPipeline(d ContactDeps) *ContactPipeline {
	return &ContactPipeline{d: d}
}

func (p *ContactPipeline) Submit(ctx context.Context, sub contact.Submission) (ContactResult, error) {
	sub = contact.Submission{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Phone:   strings.TrimSpace(sub.Phone),
		Company: strings.TrimSpace(sub.Company),
		Message: strings.TrimSpace(sub.Message),
	}
	if p.invalid(sub) {
		return ContactResult{}, domain.NewValidationError("", ContactRequiredMessage)
	}

	stored := p.store(ctx, sub)

	entry, err := p.d.Backup.Append(sub)
	if err != nil {
		p.logf("[Contact] backup write failed err=%v", err)
		return ContactResult{}, err
	}

	emailed := false
	if p.d.Mailer != nil {
		sent, err := p.d.Mailer.SendContactNotification(ctx, sub)
		if err != nil {
			p.logf("[Contact] %v", &domain.EmailError{Err: err})
		}
		emailed = sent && err == nil
	}

	if p.d.Metrics != nil {
		p.d.Metrics.ContactSubmitted(stored, emailed)
	}
	p.logf("[Contact] submitted id=%s stored=%t emailed=%t", entry.ID, stored, emailed)

	return ContactResult{
		Success:          true,
		Message:          ContactSuccessMessage,
		EmailSent:        emailed,
		SavedMessage:     entry,
		StoredInSupabase: stored,
	}, nil
}

func (p *ContactPipeline) invalid(sub contact.Submission) bool {
	if p.d.Validator != nil {
		return len(p.d.Validator.Fields(sub)) > 0
	}
	return sub.Name == "" || sub.Email == "" || sub.Message == ""
}

func (p *ContactPipeline) store(ctx context.Context, sub contact.Submission) bool {
	if p.d.Messages == nil {
		return false
	}
	m := contact.Message{
		ID:      uuid.New(),
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Company: sub.Company,
		Message: sub.Message,
		Status:  contact.StatusNew,
	}
	if err := p.d.Messages.Create(ctx, m); err != nil {
		p.logf("[Contact] store insert failed err=%v", err)
		return false
	}
	if p.d.Notify != nil {
		p.d.Notify.MessageReceived(m)
	}
	return true
}

// Backups returns the local backup file's entries in write order.
func (p *ContactPipeline) Backups(ctx context.Context) ([]contact.BackupEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.d.Backup.All()
}

func (p *ContactPipeline) logf(format string, args ...any) {
	if p.d.Logger != nil {
		p.d.Logger.Printf(format, args...)
	}
}
