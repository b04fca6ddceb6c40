package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/infrastructure/backup"
	"elextrio-site/internal/pkg/validate"
)

type mockMailer struct {
	sent bool
	err  error
	subs []contact.Submission
}

func (m *mockMailer) SendContactNotification(_ context.Context, sub contact.Submission) (bool, error) {
	m.subs = append(m.subs, sub)
	return m.sent, m.err
}

type mockContactRecorder struct {
	stored, emailed []bool
}

func (m *mockContactRecorder) ContactSubmitted(stored, emailed bool) {
	m.stored = append(m.stored, stored)
	m.emailed = append(m.emailed, emailed)
}

type contactFixture struct {
	messages *mockMessageRepo
	mailer   *mockMailer
	notify   *mockNotifier
	metrics  *mockContactRecorder
	path     string
	p        *ContactPipeline
}

func newContactFixture(t *testing.T) *contactFixture {
	t.Helper()
	f := &contactFixture{
		messages: &mockMessageRepo{},
		mailer:   &mockMailer{sent: true},
		notify:   &mockNotifier{},
		metrics:  &mockContactRecorder{},
		path:     filepath.Join(t.TempDir(), "data", "contact-messages.json"),
	}
	f.p = NewContactPipeline(ContactDeps{
		Messages:  f.messages,
		Backup:    backup.NewFileStore(f.path),
		Mailer:    f.mailer,
		Notify:    f.notify,
		Metrics:   f.metrics,
		Validator: validate.New(),
	})
	return f
}

func validSubmission() contact.Submission {
	return contact.Submission{Name: "Ann", Email: "ann@example.com", Message: "Hello"}
}

func TestContactPipeline_AllChannels(t *testing.T) {
	f := newContactFixture(t)
	res, err := f.p.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Success || !res.EmailSent || !res.StoredInSupabase || res.Message != ContactSuccessMessage {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.SavedMessage.Name != "Ann" || res.SavedMessage.ID == "" || res.SavedMessage.Timestamp == "" {
		t.Fatalf("unexpected saved message %+v", res.SavedMessage)
	}
	if len(f.messages.created) != 1 || f.messages.created[0].Status != contact.StatusNew {
		t.Fatalf("expected one new message stored")
	}
	if len(f.notify.messages) != 1 {
		t.Fatalf("expected admin notification")
	}

	all, err := f.p.Backups(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one backup entry, got %d err=%v", len(all), err)
	}
}

func TestContactPipeline_MissingFieldsWritesNothing(t *testing.T) {
	f := newContactFixture(t)
	_, err := f.p.Submit(context.Background(), contact.Submission{Name: "Ann", Email: " ", Message: "Hi"})
	if !domain.IsValidation(err) || err.Error() != ContactRequiredMessage {
		t.Fatalf("expected required-fields error, got %v", err)
	}
	if len(f.messages.created) != 0 || len(f.mailer.subs) != 0 {
		t.Fatalf("nothing may be stored or sent")
	}
	if _, statErr := os.Stat(f.path); !os.IsNotExist(statErr) {
		t.Fatalf("backup file must not be created, stat err=%v", statErr)
	}
}

func TestContactPipeline_StoreFailureStillSucceeds(t *testing.T) {
	f := newContactFixture(t)
	f.messages.err = domain.NewStoreError("messages.create", errors.New("relation does not exist"))

	res, err := f.p.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.StoredInSupabase || !res.Success {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(f.notify.messages) != 0 {
		t.Fatalf("no notification without a stored row")
	}
	if f.metrics.stored[0] || !f.metrics.emailed[0] {
		t.Fatalf("unexpected metrics %+v", f.metrics)
	}
}

func TestContactPipeline_EmailFailureIsFlag(t *testing.T) {
	f := newContactFixture(t)
	f.mailer.err = errors.New("rate limited")

	res, err := f.p.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.EmailSent || !res.Success {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestContactPipeline_BackupFailureIsFatal(t *testing.T) {
	f := newContactFixture(t)
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(f.path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := f.p.Submit(context.Background(), validSubmission()); err == nil {
		t.Fatalf("expected backup error")
	}
	if len(f.mailer.subs) != 0 {
		t.Fatalf("email must not be sent after a failed backup")
	}
	b, _ := os.ReadFile(f.path)
	if string(b) != "{not json" {
		t.Fatalf("corrupt backup must be left untouched, got %q", b)
	}
}

func TestContactPipeline_TrimsInput(t *testing.T) {
	f := newContactFixture(t)
	res, err := f.p.Submit(context.Background(), contact.Submission{Name: "  Ann ", Email: "ann@example.com ", Message: " Hi "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SavedMessage.Name != "Ann" || res.SavedMessage.Message != "Hi" {
		t.Fatalf("input not trimmed: %+v", res.SavedMessage)
	}
}
