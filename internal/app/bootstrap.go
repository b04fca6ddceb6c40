package app

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"elextrio-site/internal/config"
	"elextrio-site/internal/delivery/http/handler"
	"elextrio-site/internal/delivery/http/middleware"
	"elextrio-site/internal/delivery/http/routes"
	v1 "elextrio-site/internal/delivery/http/routes/v1"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.App.BodyLimit,
	})

	registerGlobalMiddleware(f, cfg, c.Logger)
	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewContactHandler(c.Contact, c.Logger),
		c.Metrics.Handler(),
		apiHandlers(cfg, c),
	).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	c.Start()

	app := New(cfg, c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	origins := cfg.App.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization, middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}))
}

func apiHandlers(cfg config.Config, c *Container) v1.Handlers {
	auth := middleware.NewAuthMiddleware(c.Auth)
	col := c.Collections

	return v1.Handlers{
		Auth:         handler.NewAuthHandler(c.Auth, c.Validator),
		Public:       handler.NewPublicHandler(c.Public),
		Careers:      handler.NewCareersHandler(c.ApplicationDeps, c.Validator, cfg.Storage.MaxUploadBytes),
		Dashboard:    handler.NewDashboardHandler(c.Dashboard),
		Jobs:         handler.NewJobsHandler(col.Jobs, c.Workspaces, c.Validator, time.Now),
		Applications: handler.NewApplicationsHandler(c.Applications, c.Workspaces, c.Validator),
		Messages:     handler.NewMessagesHandler(c.Messages, c.Workspaces, c.Validator),
		Collections: map[string]v1.RouteRegistrar{
			"projects":   handler.NewCollectionHandler(col.Projects, c.Workspaces, listview.ProjectSchema(), handler.ProjectCodec(c.Validator)),
			"services":   handler.NewCollectionHandler(col.Services, c.Workspaces, listview.ServiceSchema(), handler.ServiceCodec(c.Validator)),
			"industries": handler.NewCollectionHandler(col.Industries, c.Workspaces, listview.IndustrySchema(), handler.IndustryCodec(c.Validator)),
			"content":    handler.NewCollectionHandler(col.Content, c.Workspaces, listview.ContentSchema(), handler.ContentCodec(c.Validator)),
		},
		AdminWS:        ws.NewHandler(c.Hub, cfg.App.CORSOrigins, c.Logger).HandleAdminWS,
		RequireSession: auth.Middleware(),
		SubmitLimit:    submitLimiter(cfg.App.SubmitRateLimit),
	}
}

// submitLimiter throttles form posts per client IP; nil when disabled.
func submitLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return nil
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c fiber.Ctx) error {
			return middleware.NewAppError(fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil, nil)
		},
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
