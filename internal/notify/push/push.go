// Package push delivers booking notifications through an HTTP push gateway.
package push

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

// Config captures the subset of push gateway behaviour we need.
type Config struct {
	GatewayURL string
	AuthKey    string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client delivers booking notifications to a push gateway webhook.
type Client struct {
	gatewayURL string
	authKey    string
	retryLimit int
	client     *http.Client
}

// NewClient builds a push gateway client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	gatewayURL := strings.TrimSpace(cfg.GatewayURL)
	if gatewayURL == "" {
		return nil, errors.New("push gateway url is required")
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
		authKey:    strings.TrimSpace(cfg.AuthKey),
		retryLimit: retries,
		client:     hc,
	}, nil
}

// Send posts a push notification for the message's device token. Messages
// without a token are skipped without error so mixed-channel fan-out can hand
// every recipient to every sink.
func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	token := strings.TrimSpace(msg.DeviceToken)
	if token == "" {
		return nil
	}

	body, err := json.Marshal(c.formatPayload(token, msg))
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
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
			// Simple linear backoff to avoid thundering retries.
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

func (c *Client) formatPayload(token string, msg notify.Message) map[string]any {
	occurred := msg.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	data := map[string]any{
		"job_id":        msg.JobID,
		"kind":          string(msg.Kind),
		"language_from": msg.LanguageFrom,
		"language_to":   msg.LanguageTo,
		"region":        msg.Region,
		"occurred_at":   occurred.UTC().Format(time.RFC3339),
	}
	for k, v := range msg.Metadata {
		data[k] = v
	}

	return map[string]any{
		"to":    token,
		"title": msg.Title,
		"body":  msg.Body,
		"data":  data,
	}
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authKey != "" {
		req.Header.Set("Authorization", "key="+c.authKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleErrorResponse(resp)
	}

	return drainSuccess(resp)
}

func drainSuccess(resp *http.Response) error {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return errors.Join(
				fmt.Errorf("drain push response body: %w", err),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return fmt.Errorf("drain push response body: %w", err)
	}
	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}
	return nil
}

func (c *Client) handleErrorResponse(resp *http.Response) error {
	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return errors.Join(
				fmt.Errorf("read push error response: %w", readErr),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return fmt.Errorf("read push error response: %w", readErr)
	}
	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}

	return fmt.Errorf("push gateway %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
}
