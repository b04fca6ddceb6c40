package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elextrio-site/internal/domain/identity"
)

func TestAuthClient_SignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		if r.Header.Get("apikey") != "anon" {
			t.Errorf("missing apikey header")
		}
		var body passwordGrant
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "s3cret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600,"expires_at":1893456000,"user":{"id":"u-1","email":"admin@elextrio.com"}}`))
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL+"/auth/v1", "anon", time.Second)

	id, err := a.SignIn(context.Background(), "admin@elextrio.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id.AccessToken != "tok" || id.UserID != "u-1" || id.ExpiresAt.Unix() != 1893456000 {
		t.Fatalf("unexpected identity: %+v", id)
	}

	_, err = a.SignIn(context.Background(), "admin@elextrio.com", "wrong")
	if !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthClient_SignOutToleratesRevokedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token")
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if err := NewAuthClient(srv.URL, "anon", time.Second).SignOut(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
