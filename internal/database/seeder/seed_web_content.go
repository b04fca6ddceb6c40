package seeder

import (
	"context"

	"elextrio-site/internal/database"
	"elextrio-site/internal/domain/content"
	"elextrio-site/internal/repository"
)

// DefaultWebContent is the copy public pages fall back to, stored so staff
// can edit it from the admin panel.
var DefaultWebContent = []content.WebContent{
	{Key: "hero_title", Section: content.SectionHome, Type: content.TypeText, Value: "Powering Industry Through Automation"},
	{Key: "hero_subtitle", Section: content.SectionHome, Type: content.TypeText, Value: "Elextrio Automation designs, builds and commissions control systems for manufacturing and energy."},
	{Key: "about_description", Section: content.SectionAbout, Type: content.TypeHTML, Value: "<p>Elextrio Automation delivers industrial automation, electrical engineering and system integration services.</p>"},
	{Key: "contact_email", Section: content.SectionContact, Type: content.TypeText, Value: "info@elextrio.com"},
	{Key: "contact_address", Section: content.SectionContact, Type: content.TypeText, Value: "Bangalore, India"},
	{Key: "careers_intro", Section: content.SectionCareers, Type: content.TypeText, Value: "Join a team that builds the systems industry runs on."},
	{Key: "copyright", Section: content.SectionFooter, Type: content.TypeText, Value: "Elextrio Automation. All rights reserved."},
	{Key: "heading", Section: content.SectionWhyJoinUs, Type: content.TypeText, Value: "WHY JOIN US"},
	{Key: "subheading", Section: content.SectionWhyJoinUs, Type: content.TypeText, Value: "Build Your Career With Elextrio"},
	{Key: "benefits_heading", Section: content.SectionWhyJoinUs, Type: content.TypeText, Value: "Our Company Benefits"},
	{Key: "environment_heading", Section: content.SectionWhyJoinUs, Type: content.TypeText, Value: "Work Environment"},
	{Key: "tips_heading", Section: content.SectionApplicationProcess, Type: content.TypeText, Value: "Tips for a Successful Application"},
}

type WebContentSeeder struct{}

func (WebContentSeeder) Name() string { return "web_content" }

// Run inserts each default slot whose key is not taken. Edited rows are left alone.
func (WebContentSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "web_content", "id", "key", "value", "section", "type", "created_at"); err != nil {
		return err
	}

	repo := repository.NewPostgresContentRepository(db)
	for _, c := range DefaultWebContent {
		if _, err := repo.Ensure(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
