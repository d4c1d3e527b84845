// Package api assembles the fiber application serving the notes resource.
package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/evgeniy-krivenko/rest-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/rest-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/rest-notes/internal/web"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
)

const appName = "rest-notes"

type AppConfig struct {
	CORSOrigins []string
	UIEnabled   bool
}

// NewApp wires middlewares, the notes resource and optionally the UI into one fiber app.
func NewApp(svc *notes.Service, cfg AppConfig) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          notes.ErrorHandler,
		DisableStartupMessage: true,
	})

	origins := strings.Join(cfg.CORSOrigins, ",")
	if origins == "" {
		origins = "*"
	}

	app.Use(
		recover.New(),
		ctxtr.Middleware(),
		slogx.FiberMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:  "Content-Type," + ctxtr.HeaderRequestID,
			ExposeHeaders: ctxtr.HeaderRequestID,
		}),
	)

	svc.RegisterRoutes(app)

	if cfg.UIEnabled {
		if err := web.Register(app); err != nil {
			return nil, fmt.Errorf("register ui: %v", err)
		}
	}

	return app, nil
}
