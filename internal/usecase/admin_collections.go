package usecase

import (
	"log"

	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/repository"
)

type (
	JobsCollection       = Collection[job.Job, job.Patch]
	ProjectsCollection   = Collection[catalog.Project, catalog.ProjectPatch]
	ServicesCollection   = Collection[catalog.Service, catalog.ServicePatch]
	IndustriesCollection = Collection[catalog.Industry, catalog.IndustryPatch]
	ContentCollection    = Collection[content.WebContent, content.Patch]
)

// AdminCollections are the generic CRUD screens of the admin panel.
type AdminCollections struct {
	Jobs       *JobsCollection
	Projects   *ProjectsCollection
	Services   *ServicesCollection
	Industries *IndustriesCollection
	Content    *ContentCollection
}

type AdminCollectionDeps struct {
	Jobs       repository.JobRepository
	Projects   repository.ProjectRepository
	Services   repository.ServiceRepository
	Industries repository.IndustryRepository
	Content    repository.ContentRepository
	Cache      ContentCache
	Notify     RecordNotifier
	Logger     *log.Logger
}

func NewAdminCollections(d AdminCollectionDeps) AdminCollections {
	return AdminCollections{
		Jobs: NewCollection(CollectionConfig[job.Job, job.Patch]{
			Name: "jobs", Scope: ScopeJobs, Store: d.Jobs,
			Table: func(ws *listview.Workspace) *listview.Table[job.Job] { return ws.Jobs },
			Apply: job.Patch.Apply,
			Cache: d.Cache, Notify: d.Notify, Logger: d.Logger,
		}),
		Projects: NewCollection(CollectionConfig[catalog.Project, catalog.ProjectPatch]{
			Name: "projects", Scope: ScopeProjects, Store: d.Projects,
			Table: func(ws *listview.Workspace) *listview.Table[catalog.Project] { return ws.Projects },
			Apply: catalog.ProjectPatch.Apply,
			Cache: d.Cache, Notify: d.Notify, Logger: d.Logger,
		}),
		Services: NewCollection(CollectionConfig[catalog.Service, catalog.ServicePatch]{
			Name: "services", Scope: ScopeServices, Store: d.Services,
			Table: func(ws *listview.Workspace) *listview.Table[catalog.Service] { return ws.Services },
			Apply: catalog.ServicePatch.Apply,
			Cache: d.Cache, Notify: d.Notify, Logger: d.Logger,
		}),
		Industries: NewCollection(CollectionConfig[catalog.Industry, catalog.IndustryPatch]{
			Name: "industries", Scope: ScopeIndustries, Store: d.Industries,
			Table: func(ws *listview.Workspace) *listview.Table[catalog.Industry] { return ws.Industries },
			Apply: catalog.IndustryPatch.Apply,
			Cache: d.Cache, Notify: d.Notify, Logger: d.Logger,
		}),
		Content: NewCollection(CollectionConfig[content.WebContent, content.Patch]{
			Name: "content", Scope: ScopeContent, Store: d.Content,
			Table: func(ws *listview.Workspace) *listview.Table[content.WebContent] { return ws.Content },
			Apply: content.Patch.Apply,
			Cache: d.Cache, Notify: d.Notify, Logger: d.Logger,
		}),
	}
}
