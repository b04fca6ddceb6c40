package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title" validate:"required"`
	Summary     string    `json:"summary" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Industry    string    `json:"industry" validate:"required"`
	Client      string    `json:"client,omitempty"`
	Featured    bool      `json:"featured"`
	ImageURL    string    `json:"image_url"`
}

type ProjectPatch struct {
	Title       *string `json:"title,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	Description *string `json:"description,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Client      *string `json:"client,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (p ProjectPatch) Apply(v Project) Project {
	setString(&v.Title, p.Title)
	setString(&v.Summary, p.Summary)
	setString(&v.Description, p.Description)
	setString(&v.Industry, p.Industry)
	setString(&v.Client, p.Client)
	setString(&v.ImageURL, p.ImageURL)
	if p.Featured != nil {
		v.Featured = *p.Featured
	}
	return v
}

type Service struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Title            string    `json:"title" validate:"required"`
	ShortDescription string    `json:"short_description" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	Icon             string    `json:"icon"`
	Featured         bool      `json:"featured"`
}

type ServicePatch struct {
	Title            *string `json:"title,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`
	Description      *string `json:"description,omitempty"`
	Icon             *string `json:"icon,omitempty"`
	Featured         *bool   `json:"featured,omitempty"`
}

func (p ServicePatch) Apply(v Service) Service {
	setString(&v.Title, p.Title)
	setString(&v.ShortDescription, p.ShortDescription)
	setString(&v.Description, p.Description)
	setString(&v.Icon, p.Icon)
	if p.Featured != nil {
		v.Featured = *p.Featured
	}
	return v
}

// Industry keeps Applications as a list; the admin editor shows it as one
// comma-joined string (see editor.ToEditString).
type Industry struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Icon         string    `json:"icon,omitempty"`
	Applications []string  `json:"applications"`
	ImageURL     string    `json:"image_url,omitempty"`
}

type IndustryPatch struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	Applications *[]string `json:"applications,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
}

func (p IndustryPatch) Apply(v Industry) Industry {
	setString(&v.Name, p.Name)
	setString(&v.Description, p.Description)
	setString(&v.Icon, p.Icon)
	setString(&v.ImageURL, p.ImageURL)
	if p.Applications != nil {
		v.Applications = append([]string(nil), (*p.Applications)...)
	}
	return v
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
