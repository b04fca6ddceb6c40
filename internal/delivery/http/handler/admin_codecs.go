package handler

import (
	"time"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/editor"
	"elextrio-site/internal/pkg/validate"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// JobCodec reads the job editor form. An update writes every field.
func JobCodec(v *validate.Validator, now func() time.Time) CollectionCodec[job.Job, job.Patch] {
	form := func(c fiber.Ctx) (editor.JobForm, error) {
		req, err := bindBody[dto.JobRequest](c, nil)
		if err != nil {
			return editor.JobForm{}, err
		}
		f := req.Form(now())
		if err := v.Struct(f); err != nil {
			return editor.JobForm{}, mapUsecaseError(err)
		}
		return f, nil
	}
	return CollectionCodec[job.Job, job.Patch]{
		Create: func(c fiber.Ctx) (job.Job, error) {
			f, err := form(c)
			if err != nil {
				return job.Job{}, err
			}
			j, err := f.ToJob()
			if err != nil {
				return job.Job{}, mapUsecaseError(err)
			}
			return j, nil
		},
		Patch: func(c fiber.Ctx) (job.Patch, error) {
			f, err := form(c)
			if err != nil {
				return job.Patch{}, err
			}
			p, err := f.Patch()
			if err != nil {
				return job.Patch{}, mapUsecaseError(err)
			}
			return p, nil
		},
	}
}

func ProjectCodec(v *validate.Validator) CollectionCodec[catalog.Project, catalog.ProjectPatch] {
	return CollectionCodec[catalog.Project, catalog.ProjectPatch]{
		Create: func(c fiber.Ctx) (catalog.Project, error) {
			p, err := bindBody[catalog.Project](c, v)
			p.ID = uuid.Nil
			return p, err
		},
		Patch: func(c fiber.Ctx) (catalog.ProjectPatch, error) {
			return bindBody[catalog.ProjectPatch](c, nil)
		},
	}
}

func ServiceCodec(v *validate.Validator) CollectionCodec[catalog.Service, catalog.ServicePatch] {
	return CollectionCodec[catalog.Service, catalog.ServicePatch]{
		Create: func(c fiber.Ctx) (catalog.Service, error) {
			s, err := bindBody[catalog.Service](c, v)
			s.ID = uuid.Nil
			return s, err
		},
		Patch: func(c fiber.Ctx) (catalog.ServicePatch, error) {
			return bindBody[catalog.ServicePatch](c, nil)
		},
	}
}

// IndustryCodec takes applications as comma-separated text and shows them the same way.
func IndustryCodec(v *validate.Validator) CollectionCodec[catalog.Industry, catalog.IndustryPatch] {
	return CollectionCodec[catalog.Industry, catalog.IndustryPatch]{
		Create: func(c fiber.Ctx) (catalog.Industry, error) {
			req, err := bindBody[dto.IndustryRequest](c, v)
			if err != nil {
				return catalog.Industry{}, err
			}
			return req.Industry(), nil
		},
		Patch: func(c fiber.Ctx) (catalog.IndustryPatch, error) {
			req, err := bindBody[dto.IndustryPatchRequest](c, nil)
			if err != nil {
				return catalog.IndustryPatch{}, err
			}
			return req.Patch(), nil
		},
		Present: func(in catalog.Industry) any { return dto.NewIndustryResponse(in) },
	}
}

// ContentCodec defaults the type to text and rejects unknown sections or types.
func ContentCodec(v *validate.Validator) CollectionCodec[content.WebContent, content.Patch] {
	return CollectionCodec[content.WebContent, content.Patch]{
		Create: func(c fiber.Ctx) (content.WebContent, error) {
			wc, err := bindBody[content.WebContent](c, v)
			if err != nil {
				return content.WebContent{}, err
			}
			wc.ID = uuid.Nil
			if wc.Type == "" {
				wc.Type = content.TypeText
			}
			if err := checkContent(&wc.Section, &wc.Type); err != nil {
				return content.WebContent{}, err
			}
			return wc, nil
		},
		Patch: func(c fiber.Ctx) (content.Patch, error) {
			p, err := bindBody[content.Patch](c, nil)
			if err != nil {
				return content.Patch{}, err
			}
			if p.Key != nil && *p.Key == "" {
				return content.Patch{}, mapUsecaseError(domain.NewValidationError("key", "key is required"))
			}
			if err := checkContent(p.Section, p.Type); err != nil {
				return content.Patch{}, err
			}
			return p, nil
		},
	}
}

func checkContent(section *content.Section, typ *content.Type) error {
	if section != nil && !section.Valid() {
		return mapUsecaseError(domain.NewValidationError("section", "Invalid content section"))
	}
	if typ != nil && !typ.Valid() {
		return mapUsecaseError(domain.NewValidationError("type", "Invalid content type"))
	}
	return nil
}
