// Package apiclient talks to the contact resource over HTTP.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"contactlog/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	contactsPath = "/api/contacts"
	seedPath     = "/api/fillDB"

	// maxErrorBody caps how much of an unexpected error body is kept.
	maxErrorBody = 4 << 10
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server answered %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("server answered %d %s: %s", e.Status, e.Code, e.Message)
}

// TransportError is a failure to reach the server or read its answer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorEnvelope mirrors the server's error body.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type seedEnvelope struct {
	Contacts []*entity.Contact `json:"contacts"`
}

// Client calls the contact API. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// List fetches every contact.
func (c *Client) List(ctx context.Context) ([]*entity.Contact, error) {
	var contacts []*entity.Contact
	if err := c.do(ctx, "list contacts", http.MethodGet, contactsPath, nil, &contacts); err != nil {
		return nil, err
	}

	return contacts, nil
}

// Create posts a draft and returns the stored contact.
func (c *Client) Create(ctx context.Context, draft *entity.Contact) (*entity.Contact, error) {
	payload := draft.Clone()
	payload.ID = ""

	var created *entity.Contact
	if err := c.do(ctx, "create contact", http.MethodPost, contactsPath, payload, &created); err != nil {
		return nil, err
	}

	return created, nil
}

// Update replaces the stored contact with the same id. A nil result means the
// server no longer knows the id.
func (c *Client) Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	var updated *entity.Contact
	if err := c.do(ctx, "update contact", http.MethodPatch, contactsPath, contact, &updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the contact with id and returns it, or nil if it was already gone.
func (c *Client) Delete(ctx context.Context, id string) (*entity.Contact, error) {
	var removed *entity.Contact
	body := map[string]string{"_id": id}
	if err := c.do(ctx, "delete contact", http.MethodDelete, contactsPath, body, &removed); err != nil {
		return nil, err
	}

	return removed, nil
}

// Seed asks the server to reload its fixture set and returns the new contents.
func (c *Client) Seed(ctx context.Context) ([]*entity.Contact, error) {
	var envelope seedEnvelope
	if err := c.do(ctx, "seed contacts", http.MethodGet, seedPath, nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Contacts, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", op)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", op)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("API call",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: errors.Wrap(err, "decode response")}
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if envelope.Meta != nil {
			apiErr.RequestID = envelope.Meta.RequestID
		}
	}

	return apiErr
}
