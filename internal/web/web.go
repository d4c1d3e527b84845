// Package web serves the single-page notes UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var static embed.FS

// Register mounts the UI at the root. Unknown paths fall through to the next handler.
func Register(router fiber.Router) error {
	root, err := fs.Sub(static, "static")
	if err != nil {
		return err
	}

	router.Use("/", filesystem.New(filesystem.Config{
		Root:   http.FS(root),
		Index:  "index.html",
		MaxAge: 300,
	}))

	return nil
}
