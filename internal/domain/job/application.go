package job

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationNew       ApplicationStatus = "new"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationHired     ApplicationStatus = "hired"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationNew,
	ApplicationReviewing,
	ApplicationInterview,
	ApplicationRejected,
	ApplicationHired,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Application is a candidate submission. A nil JobID is a general application.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	JobID          *uuid.UUID        `json:"job_id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	ResumeURL      string            `json:"resume_url"`
	CoverLetterURL string            `json:"cover_letter_url,omitempty"`
	Message        string            `json:"message,omitempty"`
	Status         ApplicationStatus `json:"status"`
}

func (a Application) IsGeneral() bool {
	return a.JobID == nil
}

const GeneralApplicationTitle = "General Application"
