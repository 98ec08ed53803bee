package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dtapi/booking-go/internal/notify"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when gateway url missing")
	}
}

func TestSendSkipsEmptyNumber(t *testing.T) {
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

func TestSendPostsText(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key-1" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	client, err := NewClient(Config{GatewayURL: srv.URL, Sender: "dtapi", APIKey: "key-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := notify.Message{
		Title:        "New booking",
		Body:         "Courtroom session",
		LanguageFrom: "en",
		LanguageTo:   "pl",
		PhoneNumber:  "+4670000000",
	}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["from"] != "dtapi" || got["to"] != "+4670000000" {
		t.Fatalf("unexpected envelope: %v", got)
	}
	text, _ := got["message"].(string)
	for _, want := range []string{"New booking", "Courtroom session", "en -> pl"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in message text %q", want, text)
		}
	}
}

func TestSendSurfacesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid number", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client, err := NewClient(Config{GatewayURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Send(context.Background(), notify.Message{PhoneNumber: "bad"})
	if err == nil || !strings.Contains(err.Error(), "invalid number") {
		t.Fatalf("expected gateway error, got %v", err)
	}
}
