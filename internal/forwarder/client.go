// Package forwarder posts finalized appointments to the remote record
// service. Forwarding is advisory: the caller treats any failure here as a
// warning, never as a failed booking.
package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/records"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

// TransportError reports a failed remote submission: network error, timeout
// or a non-2xx response.
type TransportError struct {
	Status int // zero when the request never completed
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("forwarder: remote returned status %d", e.Status)
	}
	return fmt.Sprintf("forwarder: submit failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client posts appointment records to the remote service.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *logging.Logger
}

// New creates a forwarding client. baseURL is the full appointments endpoint.
func New(baseURL string, timeout time.Duration, logger *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Submit posts one appointment as JSON. The call is bounded by the client
// timeout so a slow remote cannot hang a booking confirmation.
func (c *Client) Submit(ctx context.Context, appt records.Appointment) error {
	body, err := json.Marshal(appt)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("encode appointment: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &TransportError{Status: resp.StatusCode}
	}

	c.logger.Debug("forwarder: appointment submitted", "status", resp.StatusCode)
	return nil
}
