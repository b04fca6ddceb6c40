package listview

import (
	"strconv"
	"strings"

	"elextrio-site/internal/domain/catalog"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/domain/job"

	"github.com/google/uuid"
)

// GeneralJobFilter selects applications that reference no job.
const GeneralJobFilter = "general"

func JobSchema() Schema[job.Job] {
	return Schema[job.Job]{
		Entity: "Job",
		ID:     func(j job.Job) uuid.UUID { return j.ID },
		Search: []func(job.Job) string{
			func(j job.Job) string { return j.Title },
			func(j job.Job) string { return j.Department },
			func(j job.Job) string { return j.Location },
		},
		Filters: map[string]func(job.Job) string{
			"status":     func(j job.Job) string { return string(j.Status) },
			"department": func(j job.Job) string { return j.Department },
		},
		Columns: map[string]Column[job.Job]{
			"title":       {KindString, func(j job.Job) string { return j.Title }},
			"department":  {KindString, func(j job.Job) string { return j.Department }},
			"location":    {KindString, func(j job.Job) string { return j.Location }},
			"type":        {KindString, func(j job.Job) string { return j.Type }},
			"status":      {KindString, func(j job.Job) string { return string(j.Status) }},
			"post_date":   {KindDate, func(j job.Job) string { return j.PostDate }},
			"expiry_date": {KindDate, func(j job.Job) string { return j.ExpiryDate }},
			"featured":    {KindOther, func(j job.Job) string { return strconv.FormatBool(j.Featured) }},
		},
		Default: Sort{Field: "post_date", Desc: true},
	}
}

func ApplicationSchema() Schema[job.Application] {
	return Schema[job.Application]{
		Entity: "Application",
		ID:     func(a job.Application) uuid.UUID { return a.ID },
		Search: []func(job.Application) string{
			func(a job.Application) string { return a.FirstName },
			func(a job.Application) string { return a.LastName },
			func(a job.Application) string { return a.Email },
			func(a job.Application) string { return a.Phone },
		},
		Filters: map[string]func(job.Application) string{
			"status": func(a job.Application) string { return string(a.Status) },
			"job": func(a job.Application) string {
				if a.JobID == nil {
					return GeneralJobFilter
				}
				return a.JobID.String()
			},
		},
		Columns: map[string]Column[job.Application]{
			"name": {KindString, func(a job.Application) string {
				return strings.TrimSpace(a.FirstName + " " + a.LastName)
			}},
			"email":      {KindString, func(a job.Application) string { return a.Email }},
			"status":     {KindString, func(a job.Application) string { return string(a.Status) }},
			"created_at": {KindDate, func(a job.Application) string { return timeValue(a.CreatedAt) }},
		},
		Default: Sort{Field: "created_at", Desc: true},
	}
}

func MessageSchema() Schema[contact.Message] {
	return Schema[contact.Message]{
		Entity: "Message",
		ID:     func(m contact.Message) uuid.UUID { return m.ID },
		Search: []func(contact.Message) string{
			func(m contact.Message) string { return m.Name },
			func(m contact.Message) string { return m.Email },
			func(m contact.Message) string { return m.Company },
			func(m contact.Message) string { return m.Message },
		},
		Filters: map[string]func(contact.Message) string{
			"status": func(m contact.Message) string { return string(m.Status) },
		},
		Columns: map[string]Column[contact.Message]{
			"name":       {KindString, func(m contact.Message) string { return m.Name }},
			"email":      {KindString, func(m contact.Message) string { return m.Email }},
			"company":    {KindString, func(m contact.Message) string { return m.Company }},
			"status":     {KindString, func(m contact.Message) string { return string(m.Status) }},
			"created_at": {KindDate, func(m contact.Message) string { return timeValue(m.CreatedAt) }},
		},
		Default: Sort{Field: "created_at", Desc: true},
	}
}

func ProjectSchema() Schema[catalog.Project] {
	return Schema[catalog.Project]{
		Entity: "Project",
		ID:     func(p catalog.Project) uuid.UUID { return p.ID },
		Search: []func(catalog.Project) string{
			func(p catalog.Project) string { return p.Title },
			func(p catalog.Project) string { return p.Summary },
			func(p catalog.Project) string { return p.Industry },
			func(p catalog.Project) string { return p.Client },
		},
		Filters: map[string]func(catalog.Project) string{
			"industry": func(p catalog.Project) string { return p.Industry },
			"featured": func(p catalog.Project) string { return strconv.FormatBool(p.Featured) },
		},
		Columns: map[string]Column[catalog.Project]{
			"title":      {KindString, func(p catalog.Project) string { return p.Title }},
			"industry":   {KindString, func(p catalog.Project) string { return p.Industry }},
			"client":     {KindString, func(p catalog.Project) string { return p.Client }},
			"featured":   {KindOther, func(p catalog.Project) string { return strconv.FormatBool(p.Featured) }},
			"created_at": {KindDate, func(p catalog.Project) string { return timeValue(p.CreatedAt) }},
		},
		Default: Sort{Field: "created_at", Desc: true},
	}
}

func ServiceSchema() Schema[catalog.Service] {
	return Schema[catalog.Service]{
		Entity: "Service",
		ID:     func(s catalog.Service) uuid.UUID { return s.ID },
		Search: []func(catalog.Service) string{
			func(s catalog.Service) string { return s.Title },
			func(s catalog.Service) string { return s.ShortDescription },
		},
		Filters: map[string]func(catalog.Service) string{
			"featured": func(s catalog.Service) string { return strconv.FormatBool(s.Featured) },
		},
		Columns: map[string]Column[catalog.Service]{
			"title":      {KindString, func(s catalog.Service) string { return s.Title }},
			"featured":   {KindOther, func(s catalog.Service) string { return strconv.FormatBool(s.Featured) }},
			"created_at": {KindDate, func(s catalog.Service) string { return timeValue(s.CreatedAt) }},
		},
		Default: Sort{Field: "created_at", Desc: true},
	}
}

func IndustrySchema() Schema[catalog.Industry] {
	return Schema[catalog.Industry]{
		Entity: "Industry",
		ID:     func(in catalog.Industry) uuid.UUID { return in.ID },
		Search: []func(catalog.Industry) string{
			func(in catalog.Industry) string { return in.Name },
			func(in catalog.Industry) string { return in.Description },
			func(in catalog.Industry) string { return strings.Join(in.Applications, ", ") },
		},
		Filters: map[string]func(catalog.Industry) string{},
		Columns: map[string]Column[catalog.Industry]{
			"name":       {KindString, func(in catalog.Industry) string { return in.Name }},
			"created_at": {KindDate, func(in catalog.Industry) string { return timeValue(in.CreatedAt) }},
		},
		Default: Sort{Field: "name"},
	}
}

func ContentSchema() Schema[content.WebContent] {
	return Schema[content.WebContent]{
		Entity: "Content",
		ID:     func(c content.WebContent) uuid.UUID { return c.ID },
		Search: []func(content.WebContent) string{
			func(c content.WebContent) string { return c.Key },
			func(c content.WebContent) string { return c.Value },
		},
		Filters: map[string]func(content.WebContent) string{
			"section": func(c content.WebContent) string { return string(c.Section) },
			"type":    func(c content.WebContent) string { return string(c.Type) },
		},
		Columns: map[string]Column[content.WebContent]{
			"key":        {KindString, func(c content.WebContent) string { return c.Key }},
			"section":    {KindString, func(c content.WebContent) string { return string(c.Section) }},
			"type":       {KindString, func(c content.WebContent) string { return string(c.Type) }},
			"created_at": {KindDate, func(c content.WebContent) string { return timeValue(c.CreatedAt) }},
		},
		Default: Sort{Field: "section"},
	}
}
