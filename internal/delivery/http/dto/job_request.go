package dto

import (
	"time"

	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/editor"
)

// JobRequest is the job editor's submitted form. List fields arrive as the
// editor's rows, blanks included.
type JobRequest struct {
	Title            string     `json:"title"`
	Department       string     `json:"department"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Qualifications   []string   `json:"qualifications"`
	Benefits         []string   `json:"benefits"`
	PostDate         string     `json:"post_date"`
	ExpiryDate       string     `json:"expiry_date"`
	Status           job.Status `json:"status"`
	Featured         bool       `json:"featured"`
}

// Form fills the editor form, keeping its defaults for fields left empty.
func (r JobRequest) Form(now time.Time) editor.JobForm {
	f := editor.NewJobForm(now)
	f.Title = r.Title
	f.Department = r.Department
	f.Location = r.Location
	if r.Type != "" {
		f.Type = r.Type
	}
	f.Description = r.Description
	if r.PostDate != "" {
		f.PostDate = r.PostDate
	}
	f.ExpiryDate = r.ExpiryDate
	if r.Status != "" {
		f.Status = r.Status
	}
	f.Featured = r.Featured
	f.Requirements = editor.NewRows(r.Requirements...)
	f.Responsibilities = editor.NewRows(r.Responsibilities...)
	f.Qualifications = editor.NewRows(r.Qualifications...)
	f.Benefits = editor.NewRows(r.Benefits...)
	return f
}

// JobFormResponse is the blank or loaded editor state, one row minimum per list.
type JobFormResponse struct {
	Title            string     `json:"title"`
	Department       string     `json:"department"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Qualifications   []string   `json:"qualifications"`
	Benefits         []string   `json:"benefits"`
	PostDate         string     `json:"post_date"`
	ExpiryDate       string     `json:"expiry_date"`
	Status           job.Status `json:"status"`
	Featured         bool       `json:"featured"`
}

func NewJobFormResponse(f editor.JobForm) JobFormResponse {
	return JobFormResponse{
		Title:            f.Title,
		Department:       f.Department,
		Location:         f.Location,
		Type:             f.Type,
		Description:      f.Description,
		Requirements:     f.Requirements.Values(),
		Responsibilities: f.Responsibilities.Values(),
		Qualifications:   f.Qualifications.Values(),
		Benefits:         f.Benefits.Values(),
		PostDate:         f.PostDate,
		ExpiryDate:       f.ExpiryDate,
		Status:           f.Status,
		Featured:         f.Featured,
	}
}
