// Package email delivers booking confirmations through an HTTP mailer service.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtapi/booking-go/internal/notify"
)

// Config captures the subset of mailer behaviour we need.
type Config struct {
	MailerURL  string
	FromName   string
	FromEmail  string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client delivers booking notifications as email through a mailer webhook.
type Client struct {
	mailerURL  string
	fromName   string
	fromEmail  string
	retryLimit int
	client     *http.Client
}

// NewClient builds a mailer client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	mailerURL := strings.TrimSpace(cfg.MailerURL)
	if mailerURL == "" {
		return nil, errors.New("mailer url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		mailerURL:  mailerURL,
		fromName:   strings.TrimSpace(cfg.FromName),
		fromEmail:  strings.TrimSpace(cfg.FromEmail),
		retryLimit: retries,
		client:     hc,
	}, nil
}

// Send mails the message to its email address. Messages without an address
// are skipped without error.
func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	address := strings.TrimSpace(msg.EmailAddress)
	if address == "" {
		return nil
	}

	payload := map[string]any{
		"to":         address,
		"from_name":  c.fromName,
		"from_email": c.fromEmail,
		"subject":    subjectFor(msg),
		"text":       msg.Body,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mail payload: %w", err)
	}

	attempts := c.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		err = c.post(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < attempts-1 {
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return lastErr
}

func subjectFor(msg notify.Message) string {
	if msg.Title != "" {
		return msg.Title
	}
	switch msg.Kind {
	case notify.KindConfirmation:
		return "Booking confirmation"
	case notify.KindCancelled:
		return "Booking cancelled"
	case notify.KindSessionEnded:
		return "Session completed"
	default:
		return "Booking update"
	}
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.mailerURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailer %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("drain mail response body: %w", err)
	}
	return nil
}
