package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dtapi/booking-go/internal/notify"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when gateway url missing")
	}
}

func TestSendSkipsEmptyToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client, err := NewClient(Config{GatewayURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Send(context.Background(), notify.Message{JobID: "j1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no gateway calls, got %d", calls.Load())
	}
}

func TestSendPostsPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "key=secret" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{GatewayURL: srv.URL, AuthKey: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := notify.Message{
		JobID:        "job-1",
		Kind:         notify.KindOffer,
		Title:        "New booking",
		Body:         "English to Spanish",
		LanguageFrom: "en",
		LanguageTo:   "es",
		DeviceToken:  "tok-1",
		OccurredAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["to"] != "tok-1" {
		t.Fatalf("expected token in payload, got %v", got["to"])
	}
	if got["title"] != "New booking" {
		t.Fatalf("expected title, got %v", got["title"])
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data field, got %T", got["data"])
	}
	if data["job_id"] != "job-1" || data["kind"] != "offer" {
		t.Fatalf("unexpected data payload: %v", data)
	}
}

func TestSendRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{GatewayURL: srv.URL, RetryLimit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Send(context.Background(), notify.Message{DeviceToken: "tok"}); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestSendReturnsLastError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token rejected", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(Config{GatewayURL: srv.URL, RetryLimit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Send(context.Background(), notify.Message{DeviceToken: "tok"})
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
}
