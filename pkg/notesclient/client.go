package notesclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const notesPath = "/api/notes"

var ErrNotFound = errors.New("note not found")

//go:generate options-gen -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	baseURL string `option:"mandatory" validate:"required,url"`

	httpClient    *http.Client
	retryAttempts uint          `default:"3" validate:"min=1"`
	retryDelay    time.Duration `default:"200ms"`
}

// Client talks to the notes REST API.
type Client struct {
	Options
	endpoint string
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes client opts: %v", err)
	}

	if opts.httpClient == nil {
		opts.httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		Options:  opts,
		endpoint: strings.TrimRight(opts.baseURL, "/") + notesPath,
	}, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	notes := make([]Note, 0)
	if err := c.get(ctx, c.endpoint, &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (Note, error) {
	var note Note
	if err := c.get(ctx, c.noteURL(id), &note); err != nil {
		return Note{}, fmt.Errorf("get note %d: %w", id, err)
	}

	return note, nil
}

func (c *Client) CreateNote(ctx context.Context, req CreateRequest) (Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPost, c.endpoint, req, &note, http.StatusCreated); err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

// UpdateNote sends only the non-nil fields of req.
func (c *Client) UpdateNote(ctx context.Context, id int64, req UpdateRequest) (Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPut, c.noteURL(id), req, &note, http.StatusOK); err != nil {
		return Note{}, fmt.Errorf("update note %d: %w", id, err)
	}

	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, c.noteURL(id), nil, nil, http.StatusNoContent); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	return nil
}

func (c *Client) noteURL(id int64) string {
	return c.endpoint + "/" + strconv.FormatInt(id, 10)
}

// get retries transport failures and 5xx responses.
func (c *Client) get(ctx context.Context, url string, out any) error {
	return retry.Do(
		func() error {
			return c.do(ctx, http.MethodGet, url, nil, out, http.StatusOK)
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
	)
}

func (c *Client) do(ctx context.Context, method, url string, in, out any, want int) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("new request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case want:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %v", err)
		}
		return nil

	case http.StatusNotFound:
		return ErrNotFound

	case http.StatusBadRequest:
		var verr ValidationError
		if err := json.NewDecoder(resp.Body).Decode(&verr); err != nil {
			return fmt.Errorf("decode validation errors: %v", err)
		}
		return &verr

	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
}

func retryable(err error) bool {
	var terr *TransportError
	if errors.As(err, &terr) {
		return !errors.Is(terr.err, context.Canceled) && !errors.Is(terr.err, context.DeadlineExceeded)
	}

	var serr *StatusError
	return errors.As(err, &serr) && serr.Code >= http.StatusInternalServerError
}
