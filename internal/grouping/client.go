// Package grouping calls the external service that clusters feedback for the
// grouped view. The service is reached with a single JSON POST per request;
// failures are returned to the caller and never retried.
package grouping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"feedback-browser/internal/logger"
	"feedback-browser/internal/models"
)

const (
	defaultTimeout = 30 * time.Second
	// maxResponseSize caps how much of the collaborator's reply is read.
	maxResponseSize = 10 << 20
	// errorBodySnippet caps how much of a failed reply ends up in the error.
	errorBodySnippet = 512
)

// ErrCollaborator is matched by every error returned from Client.Group.
var ErrCollaborator = errors.New("grouping service failed")

// Error describes a failed call to the grouping service.
type Error struct {
	// StatusCode is the collaborator's HTTP status, 0 when no response arrived.
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := ErrCollaborator.Error()
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCollaborator}
	}
	return []error{ErrCollaborator, e.Err}
}

type groupRequest struct {
	Feedback []models.Feedback `json:"feedback"`
}

type groupResponse struct {
	Feedback []models.Feedback `json:"feedback"`
}

// Client posts feedback to the grouping service.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger
}

// New returns a client for endpoint. A non-positive timeout uses the default.
func New(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.WithComponent("grouping"),
	}
}

// Group sends the feedback as {"feedback": [...]} and returns the feedback the
// service sends back.
func (c *Client) Group(ctx context.Context, feedback []models.Feedback) ([]models.Feedback, error) {
	if feedback == nil {
		feedback = []models.Feedback{}
	}
	body, err := json.Marshal(groupRequest{Feedback: feedback})
	if err != nil {
		return nil, &Error{Message: "encoding request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Message: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("grouping request failed",
			slog.String("endpoint", c.endpoint),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, &Error{Message: "sending request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodySnippet))
		c.log.Error("grouping service returned an error",
			slog.String("endpoint", c.endpoint),
			slog.Int("http_status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
		)
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response: %s", bytes.TrimSpace(snippet)),
		}
	}

	var out groupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: "decoding response", Err: err}
	}
	if out.Feedback == nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: `response has no "feedback" list`}
	}

	c.log.Debug("grouping request completed",
		slog.Int("records_sent", len(feedback)),
		slog.Int("records_received", len(out.Feedback)),
		slog.Duration("duration", time.Since(start)),
	)
	return out.Feedback, nil
}
