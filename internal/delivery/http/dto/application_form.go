package dto

import (
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/usecase"
)

// ApplicationForm is the text part of the careers multipart form.
type ApplicationForm struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone"`
	Message   string `json:"message" form:"message"`
	JobID     string `json:"jobId" form:"jobId"`
}

type ApplicationSubmitResponse struct {
	Application   *job.Application      `json:"application,omitempty"`
	State         usecase.PipelineState `json:"state"`
	Progress      int                   `json:"progress"`
	Steps         []usecase.Step        `json:"steps"`
	AcceptedTypes []string              `json:"accepted_types"`
}

func NewApplicationSubmitResponse(p *usecase.ApplicationPipeline, a *job.Application) ApplicationSubmitResponse {
	cur := p.Current()
	return ApplicationSubmitResponse{
		Application:   a,
		State:         cur.State,
		Progress:      cur.Progress,
		Steps:         p.Steps(),
		AcceptedTypes: usecase.AcceptedTypes,
	}
}
