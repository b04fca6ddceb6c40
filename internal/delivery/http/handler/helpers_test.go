package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"elextrio-site/internal/delivery/http/middleware"
	"elextrio-site/internal/session"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var discard = log.New(io.Discard, "", 0)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(discard).Middleware())
	return app
}

func withSession(id string) fiber.Handler {
	return func(c fiber.Ctx) error {
		session.Attach(c, session.Session{ID: id, UserID: "user-1", Email: "admin@elextrio.com"})
		return c.Next()
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, semanticResponse) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, semanticResponse) {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var sr semanticResponse
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &sr)
	}
	return resp, sr
}

func decodeData(t *testing.T, sr semanticResponse, out any) {
	t.Helper()
	if err := json.Unmarshal(sr.Data, out); err != nil {
		t.Fatalf("decode data: %v (raw=%s)", err, sr.Data)
	}
}
