// Package notify defines the delivery contract for booking notifications.
// Concrete channel clients live in subpackages.
package notify

import (
	"context"
	"time"
)

// Channel names recognised by downstream sinks.
const (
	ChannelPush  = "push"
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Kind identifies why a notification is being sent.
type Kind string

const (
	// KindOffer invites a translator to accept an open job.
	KindOffer Kind = "offer"
	// KindAccepted tells the customer a translator took the job.
	KindAccepted Kind = "accepted"
	// KindCancelled tells the assigned translator the job was cancelled.
	KindCancelled Kind = "cancelled"
	// KindSessionEnded confirms completion to both parties.
	KindSessionEnded Kind = "session_ended"
	// KindReopened announces a job returning to the pool.
	KindReopened Kind = "reopened"
	// KindConfirmation acknowledges a stored booking email address.
	KindConfirmation Kind = "confirmation"
)

// Message is the canonical payload handed to every sink. Each channel client
// picks the recipient field it can deliver to and ignores the rest.
type Message struct {
	JobID        string
	Kind         Kind
	Title        string
	Body         string
	LanguageFrom string
	LanguageTo   string
	Region       string

	DeviceToken  string
	PhoneNumber  string
	EmailAddress string

	OccurredAt time.Time
	Metadata   map[string]string
}

// Sink describes a destination capable of delivering booking notifications.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, msg Message) error

// Send implements the Sink interface.
func (f SinkFunc) Send(ctx context.Context, msg Message) error {
	if f == nil {
		return nil
	}
	return f(ctx, msg)
}
