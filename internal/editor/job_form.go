package editor

import (
	"time"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/job"
)

type JobForm struct {
	Title            string     `json:"title" validate:"required"`
	Department       string     `json:"department" validate:"required"`
	Location         string     `json:"location" validate:"required"`
	Type             string     `json:"type" validate:"required"`
	Description      string     `json:"description" validate:"required"`
	PostDate         string     `json:"post_date" validate:"required"`
	ExpiryDate       string     `json:"expiry_date"`
	Status           job.Status `json:"status"`
	Featured         bool       `json:"featured"`
	Requirements     Rows       `json:"-"`
	Responsibilities Rows       `json:"-"`
	Qualifications   Rows       `json:"-"`
	Benefits         Rows       `json:"-"`
}

// NewJobForm returns the blank create form: draft, posted today, one empty row per list.
func NewJobForm(now time.Time) JobForm {
	return JobForm{
		Status:           job.StatusDraft,
		PostDate:         now.Format(time.DateOnly),
		Type:             "Full-time",
		Requirements:     NewRows(),
		Responsibilities: NewRows(),
		Qualifications:   NewRows(),
		Benefits:         NewRows(),
	}
}

func JobFormFromJob(j job.Job) JobForm {
	return JobForm{
		Title:            j.Title,
		Department:       j.Department,
		Location:         j.Location,
		Type:             j.Type,
		Description:      j.Description,
		PostDate:         j.PostDate,
		ExpiryDate:       j.ExpiryDate,
		Status:           j.Status,
		Featured:         j.Featured,
		Requirements:     NewRows(j.Requirements...),
		Responsibilities: NewRows(j.Responsibilities...),
		Qualifications:   NewRows(j.Qualifications...),
		Benefits:         NewRows(j.Benefits...),
	}
}

// ToJob strips blank rows. Requirements must keep at least one entry.
func (f JobForm) ToJob() (job.Job, error) {
	reqs := f.Requirements.Clean()
	if len(reqs) == 0 {
		return job.Job{}, domain.NewValidationError("requirements", "At least one requirement is required")
	}
	status := f.Status
	if status == "" {
		status = job.StatusDraft
	}
	if !status.Valid() {
		return job.Job{}, domain.NewValidationError("status", "Invalid job status")
	}
	return job.Job{
		Title:            f.Title,
		Department:       f.Department,
		Location:         f.Location,
		Type:             f.Type,
		Description:      f.Description,
		Requirements:     reqs,
		Responsibilities: f.Responsibilities.Clean(),
		Qualifications:   f.Qualifications.Clean(),
		Benefits:         f.Benefits.Clean(),
		PostDate:         f.PostDate,
		ExpiryDate:       f.ExpiryDate,
		Status:           status,
		Featured:         f.Featured,
	}, nil
}

// Patch carries every form field, so an update writes the whole record.
func (f JobForm) Patch() (job.Patch, error) {
	j, err := f.ToJob()
	if err != nil {
		return job.Patch{}, err
	}
	return job.Patch{
		Title:            &j.Title,
		Department:       &j.Department,
		Location:         &j.Location,
		Type:             &j.Type,
		Description:      &j.Description,
		Requirements:     &j.Requirements,
		Responsibilities: &j.Responsibilities,
		Qualifications:   &j.Qualifications,
		Benefits:         &j.Benefits,
		PostDate:         &j.PostDate,
		ExpiryDate:       &j.ExpiryDate,
		Status:           &j.Status,
		Featured:         &j.Featured,
	}, nil
}
