package handler

import (
	"time"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/editor"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/pkg/validate"

	"github.com/gofiber/fiber/v3"
)

// JobsHandler is the job collection plus the editor's form endpoints.
type JobsHandler struct {
	*CollectionHandler[job.Job, job.Patch]
	uc  CollectionUsecase[job.Job, job.Patch]
	now func() time.Time
}

func NewJobsHandler(uc CollectionUsecase[job.Job, job.Patch], workspaces WorkspaceSource, v *validate.Validator, now func() time.Time) *JobsHandler {
	if now == nil {
		now = time.Now
	}
	return &JobsHandler{
		CollectionHandler: NewCollectionHandler(uc, workspaces, listview.JobSchema(), JobCodec(v, now)),
		uc:                uc,
		now:               now,
	}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/new", h.BlankForm)
	r.Get("/:id/form", h.EditForm)
	h.CollectionHandler.RegisterRoutes(r)
}

func (h *JobsHandler) BlankForm(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobFormResponse(editor.NewJobForm(h.now())))
}

func (h *JobsHandler) EditForm(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobFormResponse(editor.JobFormFromJob(j)))
}
