package dto

import (
	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/editor"
)

// IndustryRequest carries applications as the editor's comma-joined text.
type IndustryRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Icon         string `json:"icon"`
	Applications string `json:"applications"`
	ImageURL     string `json:"image_url"`
}

func (r IndustryRequest) Industry() catalog.Industry {
	return catalog.Industry{
		Name:         r.Name,
		Description:  r.Description,
		Icon:         r.Icon,
		Applications: editor.FromEditString(r.Applications),
		ImageURL:     r.ImageURL,
	}
}

type IndustryPatchRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Applications *string `json:"applications"`
	ImageURL     *string `json:"image_url"`
}

func (r IndustryPatchRequest) Patch() catalog.IndustryPatch {
	p := catalog.IndustryPatch{
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		ImageURL:    r.ImageURL,
	}
	if r.Applications != nil {
		apps := editor.FromEditString(*r.Applications)
		p.Applications = &apps
	}
	return p
}

type IndustryResponse struct {
	catalog.Industry
	ApplicationsText string `json:"applications_text"`
}

func NewIndustryResponse(in catalog.Industry) IndustryResponse {
	return IndustryResponse{Industry: in, ApplicationsText: editor.ToEditString(in.Applications)}
}
