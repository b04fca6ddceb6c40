package handler

import (
	"context"
	"strconv"
	"strings"

	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PublicContentUsecase interface {
	OpenJobs(ctx context.Context) usecase.JobListing
	FeaturedJobs(ctx context.Context) ([]job.Job, error)
	Job(ctx context.Context, id uuid.UUID) (job.Job, error)
	Projects(ctx context.Context, q usecase.ProjectQuery) (usecase.ProjectPage, error)
	FeaturedProjects(ctx context.Context) ([]catalog.Project, error)
	Services(ctx context.Context) ([]catalog.Service, error)
	FeaturedServices(ctx context.Context) ([]catalog.Service, error)
	Industries(ctx context.Context) ([]catalog.Industry, error)
	Section(ctx context.Context, section content.Section) (content.Lookup, error)
	ContentByKey(ctx context.Context, key string) (content.WebContent, error)
}

type PublicHandler struct {
	uc PublicContentUsecase
}

func NewPublicHandler(uc PublicContentUsecase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

func (h *PublicHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.OpenJobs)
	r.Get("/jobs/featured", h.FeaturedJobs)
	r.Get("/jobs/:id", h.Job)

	r.Get("/projects", h.Projects)
	r.Get("/projects/featured", h.FeaturedProjects)

	r.Get("/services", h.Services)
	r.Get("/services/featured", h.FeaturedServices)

	r.Get("/industries", h.Industries)

	r.Get("/content/key/:key", h.ContentByKey)
	r.Get("/content/:section", h.Section)
}

func (h *PublicHandler) OpenJobs(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.OpenJobs(c.Context()))
}

func (h *PublicHandler) FeaturedJobs(c fiber.Ctx) error {
	out, err := h.uc.FeaturedJobs(c.Context())
	return respond(c, out, err)
}

func (h *PublicHandler) Job(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Job(c.Context(), id)
	return respond(c, out, err)
}

func (h *PublicHandler) Projects(c fiber.Ctx) error {
	q := usecase.ProjectQuery{Industry: c.Query("industry")}
	var err error
	if q.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if q.PerPage, err = queryInt(c, "per_page"); err != nil {
		return err
	}
	out, err := h.uc.Projects(c.Context(), q)
	return respond(c, out, err)
}

func (h *PublicHandler) FeaturedProjects(c fiber.Ctx) error {
	out, err := h.uc.FeaturedProjects(c.Context())
	return respond(c, out, err)
}

func (h *PublicHandler) Services(c fiber.Ctx) error {
	out, err := h.uc.Services(c.Context())
	return respond(c, out, err)
}

func (h *PublicHandler) FeaturedServices(c fiber.Ctx) error {
	out, err := h.uc.FeaturedServices(c.Context())
	return respond(c, out, err)
}

func (h *PublicHandler) Industries(c fiber.Ctx) error {
	out, err := h.uc.Industries(c.Context())
	return respond(c, out, err)
}

func (h *PublicHandler) Section(c fiber.Ctx) error {
	section := content.Section(strings.ToLower(strings.TrimSpace(c.Params("section"))))
	out, err := h.uc.Section(c.Context(), section)
	return respond(c, out, err)
}

func (h *PublicHandler) ContentByKey(c fiber.Ctx) error {
	out, err := h.uc.ContentByKey(c.Context(), c.Params("key"))
	return respond(c, out, err)
}

func respond(c fiber.Ctx, data any, err error) error {
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// queryInt returns 0 for an absent parameter.
func queryInt(c fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(err)
	}
	return n, nil
}
