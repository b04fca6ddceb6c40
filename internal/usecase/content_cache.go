package usecase

import (
	"context"
	"log"
	"strings"
)

type ContentCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	InvalidateScope(ctx context.Context, scope string) error
}

// Cache scopes. Keys are public:{scope}:{parts...}; an admin write drops its whole scope.
const (
	ScopeJobs       = "jobs"
	ScopeProjects   = "projects"
	ScopeServices   = "services"
	ScopeIndustries = "industries"
	ScopeContent    = "content"
)

func PublicCacheKey(scope string, parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.Join(strings.Fields(p), " "))
		if p == "" {
			p = "-"
		}
		clean = append(clean, p)
	}
	return "public:" + scope + ":" + strings.Join(clean, ":")
}

// cached reads key through cache, loading and storing on a miss. Cache errors
// never fail the read.
func cached[T any](ctx context.Context, cache ContentCache, logger *log.Logger, key string, load func(context.Context) (T, error)) (T, error) {
	if cache != nil {
		var out T
		hit, err := cache.GetJSON(ctx, key, &out)
		if err == nil && hit {
			if logger != nil {
				logger.Printf("[Public] Cache HIT: %s", key)
			}
			return out, nil
		}
		if logger != nil {
			logger.Printf("[Public] Cache MISS: %s", key)
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if cache != nil {
		if err := cache.SetJSON(ctx, key, v); err != nil && logger != nil {
			logger.Printf("[Public] Cache SET error key=%s err=%v", key, err)
		}
	}
	return v, nil
}

func invalidate(ctx context.Context, cache ContentCache, logger *log.Logger, scope string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateScope(ctx, scope); err != nil && logger != nil {
		logger.Printf("[Public] Cache invalidate error scope=%s err=%v", scope, err)
	}
}
