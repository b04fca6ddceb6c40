package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

type CareersHandler struct {
	deps     usecase.ApplicationDeps
	validate *validate.Validator
	maxFile  int64
}

func NewCareersHandler(deps usecase.ApplicationDeps, v *validate.Validator, maxFileBytes int64) *CareersHandler {
	return &CareersHandler{deps: deps, validate: v, maxFile: maxFileBytes}
}

func (h *CareersHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/applications/accepted-types", h.AcceptedTypes)
	if limit != nil {
		r.Post("/applications", limit, h.Submit)
	} else {
		r.Post("/applications", h.Submit)
	}
}

func (h *CareersHandler) AcceptedTypes(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, usecase.AcceptedTypes)
}

// Submit runs a fresh pipeline for the posted form. Upload failures are
// reported with the storage message, as the applicant sees it on the form.
func (h *CareersHandler) Submit(c fiber.Ctx) error {
	var form dto.ApplicationForm
	if err := c.Bind().Form(&form); err != nil {
		return badRequest(err)
	}
	if err := h.validate.Struct(form); err != nil {
		return mapUsecaseError(err)
	}

	in := usecase.ApplicationInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
	}
	if id := strings.TrimSpace(form.JobID); id != "" && id != "general" {
		jobID, err := uuid.Parse(id)
		if err != nil {
			return mapUsecaseError(domain.NewValidationError("jobId", "Invalid job id"))
		}
		in.JobID = &jobID
	}

	var err error
	if in.Resume, err = h.attachment(c, "resume"); err != nil {
		return err
	}
	if in.CoverLetter, err = h.attachment(c, "coverLetter"); err != nil {
		return err
	}

	p := usecase.NewApplicationPipeline(h.deps)
	a, err := p.Submit(c.Context(), in)
	if err != nil {
		body := dto.NewApplicationSubmitResponse(p, nil)
		switch {
		case domain.IsValidation(err):
			return response.Error(c, fiber.StatusBadRequest, usecase.SubmitErrorMessage(err), body)
		case domain.IsUpload(err):
			return response.Error(c, fiber.StatusBadGateway, usecase.SubmitErrorMessage(err), body)
		default:
			return response.Error(c, fiber.StatusInternalServerError, usecase.SubmitFailedMessage, body)
		}
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", dto.NewApplicationSubmitResponse(p, &a))
}

// attachment reads an optional file field. A missing field is nil.
func (h *CareersHandler) attachment(c fiber.Ctx, field string) (*usecase.Attachment, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, badRequest(err)
	}
	if h.maxFile > 0 && fh.Size > h.maxFile {
		return nil, mapUsecaseError(domain.NewValidationError(field, field+" exceeds the upload size limit"))
	}
	data, err := readFileHeader(fh)
	if err != nil {
		return nil, badRequest(err)
	}
	return &usecase.Attachment{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
