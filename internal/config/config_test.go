package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/site")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.SubmitRateLimit != 10 || cfg.App.WorkspaceIdle != 30*time.Minute {
		t.Fatalf("unexpected app defaults: %+v", cfg.App)
	}
	if cfg.Storage.Driver != "supabase" || cfg.Storage.MaxUploadBytes != 5*1024*1024 {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Contact.BackupFile != "data/contact-messages.json" {
		t.Fatalf("unexpected backup file %q", cfg.Contact.BackupFile)
	}
	if cfg.Supabase.Enabled() {
		t.Fatalf("supabase must be disabled without url and key")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
	for _, key := range []string{"HTTP_PORT", "JWT_SECRET", "DATABASE_URL or DB_HOST"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in %q", key, err.Error())
		}
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_TTL", "soon")
	t.Setenv("STORAGE_DRIVER", "s3")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "REDIS_TTL") || !strings.Contains(err.Error(), "STORAGE_DRIVER") {
		t.Fatalf("unexpected error %q", err.Error())
	}
}

func TestSupabaseConfig_Bases(t *testing.T) {
	c := SupabaseConfig{URL: "https://xyz.supabase.co/", AnonKey: "anon"}
	if got := c.StorageBase(); got != "https://xyz.supabase.co/storage/v1" {
		t.Fatalf("unexpected storage base %q", got)
	}
	if got := c.AuthBase(); got != "https://xyz.supabase.co/auth/v1" {
		t.Fatalf("unexpected auth base %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" https://a.com, ,https://b.com ")
	if len(got) != 2 || got[0] != "https://a.com" || got[1] != "https://b.com" {
		t.Fatalf("unexpected list %#v", got)
	}
}
