package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"
)

// SupabaseStore talks to the Supabase Storage REST API.
type SupabaseStore struct {
	base   string
	apiKey string
	http   *client.Client
}

// NewSupabaseStore takes the storage root, e.g. https://xyz.supabase.co/storage/v1.
func NewSupabaseStore(base, apiKey string, timeout time.Duration) *SupabaseStore {
	cc := client.New()
	if timeout > 0 {
		cc.SetTimeout(timeout)
	}
	return &SupabaseStore{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		http:   cc,
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyObject
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("apikey", s.apiKey).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetRawBody(data).
		Post(s.base + "/object/" + escapePath(bucket) + "/" + escapePath(key))
	if err != nil {
		return err
	}
	defer resp.Close()

	if resp.StatusCode() >= 300 {
		return apiError(resp.StatusCode(), resp.Body())
	}
	return nil
}

// PublicURL is {base}/object/public/{bucket}/{key}, with the key left unescaped.
func (s *SupabaseStore) PublicURL(bucket, key string) string {
	return s.base + "/object/public/" + bucket + "/" + key
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

type supabaseError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func apiError(status int, body []byte) error {
	var e supabaseError
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return fmt.Errorf("%s", e.Message)
	}
	if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 256 {
		return fmt.Errorf("storage responded %d: %s", status, msg)
	}
	return fmt.Errorf("storage responded %d", status)
}
