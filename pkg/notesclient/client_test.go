package notesclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/rest-notes/internal/api"
	"github.com/evgeniy-krivenko/rest-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository/memory"
	notesuc "github.com/evgeniy-krivenko/rest-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/rest-notes/pkg/notesclient"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := memory.New()
	uc, err := notesuc.New(notesuc.NewOptions(repo, repo))
	require.NoError(t, err)

	app, err := api.NewApp(notes.New(uc, time.UTC), api.AppConfig{})
	require.NoError(t, err)

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	return srv
}

func newClient(t *testing.T, baseURL string, opts ...notesclient.OptOptionsSetter) *notesclient.Client {
	t.Helper()

	c, err := notesclient.New(notesclient.NewOptions(baseURL, opts...))
	require.NoError(t, err)

	return c
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newServer(t).URL)

	list, err := c.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := c.CreateNote(ctx, notesclient.CreateRequest{Title: "Groceries", Content: "milk"})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", created.Title)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := c.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	title := "Shopping"
	updated, err := c.UpdateNote(ctx, created.ID, notesclient.UpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", updated.Title)
	assert.Equal(t, "milk", updated.Content)

	_, err = c.CreateNote(ctx, notesclient.CreateRequest{Title: "", Content: "x"})
	var verr *notesclient.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "title", verr.Errors[0].Field)
	assert.Equal(t, "title must not be blank", verr.Errors[0].Message)

	require.NoError(t, c.DeleteNote(ctx, created.ID))

	_, err = c.GetNote(ctx, created.ID)
	require.ErrorIs(t, err, notesclient.ErrNotFound)

	err = c.DeleteNote(ctx, created.ID)
	require.ErrorIs(t, err, notesclient.ErrNotFound)
}

func TestClientRetries(t *testing.T) {
	t.Run("GetRetriesServerErrors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"title":"abc","content":"x"}]`))
		}))
		defer srv.Close()

		c := newClient(t, srv.URL, notesclient.WithRetryDelay(time.Millisecond))

		list, err := c.ListNotes(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("GetGivesUpAfterAttempts", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := newClient(t, srv.URL,
			notesclient.WithRetryAttempts(2),
			notesclient.WithRetryDelay(time.Millisecond),
		)

		_, err := c.GetNote(context.Background(), 1)
		var serr *notesclient.StatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, http.StatusInternalServerError, serr.Code)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("NotFoundIsNotRetried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := newClient(t, srv.URL, notesclient.WithRetryDelay(time.Millisecond))

		_, err := c.GetNote(context.Background(), 1)
		require.ErrorIs(t, err, notesclient.ErrNotFound)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("WritesAreNotRetried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := newClient(t, srv.URL, notesclient.WithRetryDelay(time.Millisecond))

		_, err := c.CreateNote(context.Background(), notesclient.CreateRequest{Title: "abc", Content: "x"})
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestNew(t *testing.T) {
	_, err := notesclient.New(notesclient.NewOptions("not a url"))
	require.Error(t, err)

	_, err = notesclient.New(notesclient.NewOptions("http://localhost:8080", notesclient.WithRetryAttempts(0)))
	require.Error(t, err)
}
