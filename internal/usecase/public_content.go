package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed fallback_jobs.yaml
var fallbackJobsYAML []byte

const (
	DefaultProjectsPerPage = 9
	MaxProjectsPerPage     = 50
)

type JobListing struct {
	Jobs     []job.Job `json:"jobs"`
	Fallback bool      `json:"fallback"`
}

type ProjectPage struct {
	Items      []catalog.Project `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
	Industry   string            `json:"industry"`
	Industries []string          `json:"industries"`
}

type ProjectQuery struct {
	Industry string
	Page     int
	PerPage  int
}

type PublicContentDeps struct {
	Jobs       repository.JobRepository
	Projects   repository.ProjectRepository
	Services   repository.ServiceRepository
	Industries repository.IndustryRepository
	Content    repository.ContentRepository
	Cache      ContentCache
	Logger     *log.Logger
}

// PublicContent serves the read-only pages of the site.
type PublicContent struct {
	jobs       repository.JobRepository
	projects   repository.ProjectRepository
	services   repository.ServiceRepository
	industries repository.IndustryRepository
	content    repository.ContentRepository
	cache      ContentCache
	logger     *log.Logger

	fallback []job.Job
}

func NewPublicContentUsecase(d PublicContentDeps) (*PublicContent, error) {
	fb, err := LoadFallbackJobs()
	if err != nil {
		return nil, err
	}
	return &PublicContent{
		jobs:       d.Jobs,
		projects:   d.Projects,
		services:   d.Services,
		industries: d.Industries,
		content:    d.Content,
		cache:      d.Cache,
		logger:     d.Logger,
		fallback:   fb,
	}, nil
}

type fallbackJob struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Department   string   `yaml:"department"`
	Location     string   `yaml:"location"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
	PostDate     string   `yaml:"post_date"`
	Featured     bool     `yaml:"featured"`
}

// LoadFallbackJobs decodes the built-in sample postings.
func LoadFallbackJobs() ([]job.Job, error) {
	var raw []fallbackJob
	if err := yaml.Unmarshal(fallbackJobsYAML, &raw); err != nil {
		return nil, fmt.Errorf("decode fallback jobs: %w", err)
	}
	out := make([]job.Job, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("fallback job %q: %w", r.Title, err)
		}
		out = append(out, job.Job{
			ID:           id,
			Title:        r.Title,
			Department:   r.Department,
			Location:     r.Location,
			Type:         r.Type,
			Description:  r.Description,
			Requirements: r.Requirements,
			PostDate:     r.PostDate,
			Status:       job.StatusOpen,
			Featured:     r.Featured,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fallback job list is empty")
	}
	return out, nil
}

// OpenJobs never fails: a store error or an empty result yields the sample list.
func (u *PublicContent) OpenJobs(ctx context.Context) JobListing {
	jobs, err := cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeJobs, "open"), u.jobs.ListOpen)
	if err != nil {
		u.logf("[Public] open jobs unavailable, using fallback err=%v", err)
		return JobListing{Jobs: u.fallbackJobs(), Fallback: true}
	}
	if len(jobs) == 0 {
		return JobListing{Jobs: u.fallbackJobs(), Fallback: true}
	}
	return JobListing{Jobs: jobs}
}

func (u *PublicContent) fallbackJobs() []job.Job {
	return append([]job.Job(nil), u.fallback...)
}

func (u *PublicContent) FeaturedJobs(ctx context.Context) ([]job.Job, error) {
	return cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeJobs, "featured"), u.jobs.ListFeatured)
}

// Job returns one posting for the apply page. Only open postings are visible.
func (u *PublicContent) Job(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeJobs, "id", id.String()), func(ctx context.Context) (job.Job, error) {
		return u.jobs.Get(ctx, id)
	})
	if err != nil {
		return job.Job{}, err
	}
	if !j.IsOpen() {
		return job.Job{}, domain.NewNotFoundError("Job", id.String())
	}
	return j, nil
}

// Projects filters by industry ("all" or empty disables the filter) and pages the result.
func (u *PublicContent) Projects(ctx context.Context, q ProjectQuery) (ProjectPage, error) {
	all, err := cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeProjects, "all"), u.projects.List)
	if err != nil {
		return ProjectPage{}, err
	}

	industry := strings.TrimSpace(q.Industry)
	if strings.EqualFold(industry, "all") {
		industry = ""
	}

	seen := map[string]struct{}{}
	industries := make([]string, 0)
	filtered := make([]catalog.Project, 0, len(all))
	for _, p := range all {
		if _, ok := seen[p.Industry]; !ok && p.Industry != "" {
			seen[p.Industry] = struct{}{}
			industries = append(industries, p.Industry)
		}
		if industry == "" || strings.EqualFold(p.Industry, industry) {
			filtered = append(filtered, p)
		}
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = DefaultProjectsPerPage
	}
	if perPage > MaxProjectsPerPage {
		perPage = MaxProjectsPerPage
	}
	totalPages := (len(filtered) + perPage - 1) / perPage
	page := q.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	items := []catalog.Project{}
	if start < len(filtered) {
		end := min(start+perPage, len(filtered))
		items = filtered[start:end]
	}

	return ProjectPage{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Industry:   industry,
		Industries: industries,
	}, nil
}

func (u *PublicContent) FeaturedProjects(ctx context.Context) ([]catalog.Project, error) {
	return cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeProjects, "featured"), u.projects.ListFeatured)
}

func (u *PublicContent) Services(ctx context.Context) ([]catalog.Service, error) {
	return cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeServices, "all"), u.services.List)
}

func (u *PublicContent) FeaturedServices(ctx context.Context) ([]catalog.Service, error) {
	return cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeServices, "featured"), u.services.ListFeatured)
}

func (u *PublicContent) Industries(ctx context.Context) ([]catalog.Industry, error) {
	return cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeIndustries, "all"), u.industries.List)
}

// Section returns the key/value lookup of one page section.
func (u *PublicContent) Section(ctx context.Context, section content.Section) (content.Lookup, error) {
	if !section.Valid() {
		return nil, domain.NewNotFoundError("Section", string(section))
	}
	items, err := cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeContent, "section", string(section)), func(ctx context.Context) ([]content.WebContent, error) {
		return u.content.ListBySection(ctx, section)
	})
	if err != nil {
		return nil, err
	}
	return content.NewLookup(items), nil
}

func (u *PublicContent) ContentByKey(ctx context.Context, key string) (content.WebContent, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return content.WebContent{}, domain.NewValidationError("key", "key is required")
	}
	return cached(ctx, u.cache, u.logger, PublicCacheKey(ScopeContent, "key", key), func(ctx context.Context) (content.WebContent, error) {
		return u.content.GetByKey(ctx, key)
	})
}

func (u *PublicContent) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

