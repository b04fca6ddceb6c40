package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/infrastructure/storage"

	"github.com/google/uuid"
)

type PipelineState string

const (
	StateIdle                 PipelineState = "idle"
	StateUploadingResume      PipelineState = "uploading_resume"
	StateUploadingCoverLetter PipelineState = "uploading_cover_letter"
	StateSubmittingRecord     PipelineState = "submitting_record"
	StateSuccess              PipelineState = "success"
	StateError                PipelineState = "error"
)

var progressOf = map[PipelineState]int{
	StateIdle:                 0,
	StateUploadingResume:      0,
	StateUploadingCoverLetter: 50,
	StateSubmittingRecord:     75,
	StateSuccess:              100,
}

const (
	ApplicationsBucket  = "job_applications"
	SubmitFailedMessage = "There was an error submitting your application"
)

// AcceptedTypes is the upload hint shown next to the file inputs. It is not enforced.
var AcceptedTypes = []string{".pdf", ".doc", ".docx"}

var ErrAlreadySubmitted = errors.New("application already submitted")

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (a *Attachment) empty() bool {
	return a == nil || len(a.Data) == 0
}

type ApplicationInput struct {
	JobID       *uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Message     string
	Resume      *Attachment
	CoverLetter *Attachment
}

type ApplicationCreator interface {
	Create(ctx context.Context, a job.Application) error
}

type ApplicationNotifier interface {
	ApplicationReceived(a job.Application)
}

type SubmissionRecorder interface {
	ApplicationSubmitted(result string)
	Upload(kind string, ok bool)
}

// ApplicationDeps is shared by every pipeline; each submission gets its own pipeline.
type ApplicationDeps struct {
	Objects      storage.ObjectStore
	Bucket       string
	Applications ApplicationCreator
	Notify       ApplicationNotifier
	Metrics      SubmissionRecorder
	Logger       *log.Logger
	Now          func() time.Time
}

type Step struct {
	State    PipelineState `json:"state"`
	Progress int           `json:"progress"`
}

// ApplicationPipeline uploads the attachments and then inserts the record.
// It is single-use. Uploaded objects are left in place when a later step fails.
type ApplicationPipeline struct {
	d ApplicationDeps

	mu    sync.Mutex
	used  bool
	steps []Step
	err   error
}

func NewApplicationPipeline(d ApplicationDeps) *ApplicationPipeline {
	if d.Bucket == "" {
		d.Bucket = ApplicationsBucket
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &ApplicationPipeline{d: d, steps: []Step{{State: StateIdle}}}
}

func (p *ApplicationPipeline) Current() Step {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.steps[len(p.steps)-1]
}

// Steps lists every state the pipeline went through, in order.
func (p *ApplicationPipeline) Steps() []Step {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Step(nil), p.steps...)
}

func (p *ApplicationPipeline) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *ApplicationPipeline) enter(s PipelineState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	progress := p.steps[len(p.steps)-1].Progress
	if v, ok := progressOf[s]; ok {
		progress = v
	}
	p.steps = append(p.steps, Step{State: s, Progress: progress})
}

func (p *ApplicationPipeline) fail(err error) error {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
	p.enter(StateError)
	p.d.recordResult("error")
	p.d.logf("[Applications] submit failed err=%v", err)
	return err
}

func (p *ApplicationPipeline) Submit(ctx context.Context, in ApplicationInput) (job.Application, error) {
	p.mu.Lock()
	if p.used {
		p.mu.Unlock()
		return job.Application{}, ErrAlreadySubmitted
	}
	p.used = true
	p.mu.Unlock()

	if in.Resume.empty() {
		return job.Application{}, p.fail(domain.NewValidationError("resume", "Resume is required"))
	}

	p.enter(StateUploadingResume)
	resumeURL, err := p.upload(ctx, "resume", storage.PrefixResumes, in.Resume)
	if err != nil {
		return job.Application{}, p.fail(err)
	}

	coverURL := ""
	if !in.CoverLetter.empty() {
		p.enter(StateUploadingCoverLetter)
		coverURL, err = p.upload(ctx, "cover letter", storage.PrefixCoverLetters, in.CoverLetter)
		if err != nil {
			return job.Application{}, p.fail(err)
		}
	}

	p.enter(StateSubmittingRecord)
	a := job.Application{
		ID:             uuid.New(),
		CreatedAt:      p.d.Now().UTC(),
		JobID:          in.JobID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		ResumeURL:      resumeURL,
		CoverLetterURL: coverURL,
		Message:        strings.TrimSpace(in.Message),
		Status:         job.ApplicationNew,
	}
	if err := p.d.Applications.Create(ctx, a); err != nil {
		return job.Application{}, p.fail(err)
	}

	p.enter(StateSuccess)
	p.d.recordResult("success")
	if p.d.Notify != nil {
		p.d.Notify.ApplicationReceived(a)
	}
	p.d.logf("[Applications] submitted id=%s job_id=%s", a.ID, jobIDString(a.JobID))
	return a, nil
}

func (p *ApplicationPipeline) upload(ctx context.Context, label, prefix string, f *Attachment) (string, error) {
	key := storage.ObjectKey(prefix, p.d.Now(), f.Filename)
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := p.d.Objects.Upload(ctx, p.d.Bucket, key, contentType, f.Data); err != nil {
		if p.d.Metrics != nil {
			p.d.Metrics.Upload(prefix, false)
		}
		return "", &domain.UploadError{Label: label, Key: key, Err: err}
	}
	if p.d.Metrics != nil {
		p.d.Metrics.Upload(prefix, true)
	}
	return p.d.Objects.PublicURL(p.d.Bucket, key), nil
}

func (d ApplicationDeps) recordResult(result string) {
	if d.Metrics != nil {
		d.Metrics.ApplicationSubmitted(result)
	}
}

func (d ApplicationDeps) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// SubmitErrorMessage is what the applicant sees: validation and upload errors
// carry their own text, everything else gets the generic message.
func SubmitErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if domain.IsValidation(err) || domain.IsUpload(err) {
		if msg := err.Error(); msg != "" {
			return msg
		}
	}
	return SubmitFailedMessage
}

func jobIDString(id *uuid.UUID) string {
	if id == nil {
		return "general"
	}
	return id.String()
}
