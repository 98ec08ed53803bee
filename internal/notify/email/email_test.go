package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dtapi/booking-go/internal/notify"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when mailer url missing")
	}
}

func TestSendSkipsEmptyAddress(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client, err := NewClient(Config{MailerURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Send(context.Background(), notify.Message{JobID: "j1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no mailer calls, got %d", calls.Load())
	}
}

func TestSendPostsMail(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	client, err := NewClient(Config{MailerURL: srv.URL, FromName: "DTApi", FromEmail: "noreply@dtapi.test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := notify.Message{
		Kind:         notify.KindConfirmation,
		Body:         "Your booking reference is REF-1.",
		EmailAddress: "user@example.com",
	}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["to"] != "user@example.com" {
		t.Fatalf("unexpected recipient: %v", got["to"])
	}
	if got["subject"] != "Booking confirmation" {
		t.Fatalf("unexpected subject: %v", got["subject"])
	}
	if got["from_email"] != "noreply@dtapi.test" {
		t.Fatalf("unexpected sender: %v", got["from_email"])
	}
}

func TestSubjectFallbacks(t *testing.T) {
	tests := []struct {
		msg  notify.Message
		want string
	}{
		{notify.Message{Title: "Custom"}, "Custom"},
		{notify.Message{Kind: notify.KindCancelled}, "Booking cancelled"},
		{notify.Message{Kind: notify.KindSessionEnded}, "Session completed"},
		{notify.Message{Kind: notify.KindOffer}, "Booking update"},
	}
	for _, tc := range tests {
		if got := subjectFor(tc.msg); got != tc.want {
			t.Fatalf("subjectFor(%v) = %q, want %q", tc.msg.Kind, got, tc.want)
		}
	}
}
