package middleware

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elextrio-site/internal/session"

	"github.com/gofiber/fiber/v3"
)

type mockAuthenticator struct {
	sessions map[string]session.Session
}

func (m mockAuthenticator) Authenticate(token string) (session.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return session.Session{}, errors.New("token invalid")
	}
	return s, nil
}

func newAuthApp(now time.Time) *fiber.App {
	auth := mockAuthenticator{sessions: map[string]session.Session{
		"good":    {ID: "s1", UserID: "user-1", Email: "admin@elextrio.com", ExpiresAt: now.Add(time.Hour)},
		"expired": {ID: "s2", UserID: "user-1", ExpiresAt: now.Add(-time.Minute)},
	}}
	m := NewAuthMiddleware(auth)
	m.now = func() time.Time { return now }

	app := fiber.New()
	app.Use(NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	app.Get("/me", m.Middleware(), func(c fiber.Ctx) error {
		s, _ := session.From(c)
		return c.SendString(s.Email)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	now := time.Date(2024, 7, 9, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing token", "/me", "", http.StatusUnauthorized},
		{"bearer header", "/me", "Bearer good", http.StatusOK},
		{"lowercase scheme", "/me", "bearer good", http.StatusOK},
		{"query token", "/me?access_token=good", "", http.StatusOK},
		{"unknown token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"expired session", "/me", "Bearer expired", http.StatusUnauthorized},
		{"basic scheme", "/me", "Basic good", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAuthApp(now)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request error: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	if tok, ok := bearerTokenFromHeader("  Bearer   abc  "); !ok || tok != "abc" {
		t.Fatalf("unexpected result %q %v", tok, ok)
	}
	if _, ok := bearerTokenFromHeader("Bearer "); ok {
		t.Fatalf("empty token must be rejected")
	}
}
