package handler

import (
	"sort"
	"strings"

	"elextrio-site/internal/delivery/http/middleware"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/session"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type WorkspaceSource interface {
	Get(key string) *listview.Workspace
}

func workspaceOf(c fiber.Ctx, src WorkspaceSource) (*listview.Workspace, error) {
	s, ok := session.From(c)
	if !ok {
		return nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return src.Get(s.Key()), nil
}

func filterNames[T any](s listview.Schema[T]) []string {
	out := make([]string, 0, len(s.Filters))
	for name := range s.Filters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// parseViewRequest reads search, sort, refresh and one query parameter per
// known filter. A parameter that is absent leaves that part of the query as is.
func parseViewRequest(c fiber.Ctx, filters []string) usecase.ViewRequest {
	q := c.Queries()
	req := usecase.ViewRequest{Filters: map[string]string{}}
	if v, ok := q["search"]; ok {
		req.Search = &v
	}
	for _, name := range filters {
		if v, ok := q[name]; ok && strings.TrimSpace(v) != "" {
			req.Filters[name] = v
		}
	}
	req.Sort = strings.TrimSpace(q["sort"])
	switch strings.ToLower(q["refresh"]) {
	case "1", "true", "yes":
		req.Refresh = true
	}
	return req
}

func paramID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}
