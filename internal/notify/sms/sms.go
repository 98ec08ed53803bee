// Package sms delivers booking notifications through an HTTP SMS gateway.
package sms

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

// Config captures the subset of SMS gateway behaviour we need.
type Config struct {
	GatewayURL string
	Sender     string
	APIKey     string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client delivers booking notifications as text messages.
type Client struct {
	gatewayURL string
	sender     string
	apiKey     string
	retryLimit int
	client     *http.Client
}

// NewClient builds an SMS gateway client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	gatewayURL := strings.TrimSpace(cfg.GatewayURL)
	if gatewayURL == "" {
		return nil, errors.New("sms gateway url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
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
		gatewayURL: gatewayURL,
		sender:     fallbackString(strings.TrimSpace(cfg.Sender), "booking"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		retryLimit: retries,
		client:     hc,
	}, nil
}

// Send posts a text message for the message's phone number. Messages without
// a number are skipped without error.
func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	number := strings.TrimSpace(msg.PhoneNumber)
	if number == "" {
		return nil
	}

	payload := map[string]any{
		"from":    c.sender,
		"to":      number,
		"message": formatText(msg),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode sms payload: %w", err)
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

func formatText(msg notify.Message) string {
	text := strings.Builder{}
	if msg.Title != "" {
		text.WriteString(msg.Title)
	}
	if msg.Body != "" {
		if text.Len() > 0 {
			text.WriteString(": ")
		}
		text.WriteString(msg.Body)
	}
	if msg.LanguageFrom != "" && msg.LanguageTo != "" {
		fmt.Fprintf(&text, " (%s -> %s)", msg.LanguageFrom, msg.LanguageTo)
	}
	return text.String()
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms gateway %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("drain sms response body: %w", err)
	}
	return nil
}
