package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/rest-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/rest-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository/memory"
	notesuc "github.com/evgeniy-krivenko/rest-notes/internal/usecase/notes"
)

func newApp(t *testing.T, cfg AppConfig) *fiber.App {
	t.Helper()

	repo := memory.New()
	uc, err := notesuc.New(notesuc.NewOptions(repo, repo))
	require.NoError(t, err)

	app, err := NewApp(notes.New(uc, time.UTC), cfg)
	require.NoError(t, err)

	return app
}

func TestNewApp(t *testing.T) {
	app := newApp(t, AppConfig{UIEnabled: true})

	t.Run("ApiTakesPrecedenceOverUI", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/notes", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(body))
		assert.NotEmpty(t, resp.Header.Get(ctxtr.HeaderRequestID))
	})

	t.Run("UI", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("UnknownPath", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/notes/not-a-number", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestNewAppCORS(t *testing.T) {
	app := newApp(t, AppConfig{CORSOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(resp.Header.Get("Access-Control-Allow-Methods"), "PUT"))
}

func TestNewAppRecoversPanics(t *testing.T) {
	app := newApp(t, AppConfig{})
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
