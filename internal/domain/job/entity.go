package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed:
		return true
	}
	return false
}

// Job is a career posting. PostDate and ExpiryDate are calendar dates (YYYY-MM-DD);
// an empty ExpiryDate means the posting does not expire.
type Job struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Title            string    `json:"title"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Qualifications   []string  `json:"qualifications,omitempty"`
	Benefits         []string  `json:"benefits,omitempty"`
	PostDate         string    `json:"post_date"`
	ExpiryDate       string    `json:"expiry_date,omitempty"`
	Status           Status    `json:"status"`
	Featured         bool      `json:"featured"`
}

func (j Job) IsOpen() bool {
	return j.Status == StatusOpen
}

// Patch carries the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Title            *string   `json:"title,omitempty"`
	Department       *string   `json:"department,omitempty"`
	Location         *string   `json:"location,omitempty"`
	Type             *string   `json:"type,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Requirements     *[]string `json:"requirements,omitempty"`
	Responsibilities *[]string `json:"responsibilities,omitempty"`
	Qualifications   *[]string `json:"qualifications,omitempty"`
	Benefits         *[]string `json:"benefits,omitempty"`
	PostDate         *string   `json:"post_date,omitempty"`
	ExpiryDate       *string   `json:"expiry_date,omitempty"`
	Status           *Status   `json:"status,omitempty"`
	Featured         *bool     `json:"featured,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Department == nil && p.Location == nil && p.Type == nil &&
		p.Description == nil && p.Requirements == nil && p.Responsibilities == nil &&
		p.Qualifications == nil && p.Benefits == nil && p.PostDate == nil &&
		p.ExpiryDate == nil && p.Status == nil && p.Featured == nil
}

// Apply merges the known fields of p into j.
func (p Patch) Apply(j Job) Job {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Department != nil {
		j.Department = *p.Department
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = append([]string(nil), (*p.Requirements)...)
	}
	if p.Responsibilities != nil {
		j.Responsibilities = append([]string(nil), (*p.Responsibilities)...)
	}
	if p.Qualifications != nil {
		j.Qualifications = append([]string(nil), (*p.Qualifications)...)
	}
	if p.Benefits != nil {
		j.Benefits = append([]string(nil), (*p.Benefits)...)
	}
	if p.PostDate != nil {
		j.PostDate = *p.PostDate
	}
	if p.ExpiryDate != nil {
		j.ExpiryDate = *p.ExpiryDate
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.Featured != nil {
		j.Featured = *p.Featured
	}
	return j
}
