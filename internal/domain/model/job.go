// Package model defines the core data types and structures used throughout the booking system.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// JobStatus represents the current lifecycle state of a translation job.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type JobStatus string

const (
	// JobStatusCreated is the logical initial state of a job before it opens for bidding.
	JobStatusCreated JobStatus = "created"
	// JobStatusPending indicates a job is open for bidding by translators.
	JobStatusPending JobStatus = "pending"
	// JobStatusAssigned indicates a candidate translator has been selected but not confirmed.
	JobStatusAssigned JobStatus = "assigned"
	// JobStatusAccepted indicates a translator has confirmed the job.
	JobStatusAccepted JobStatus = "accepted"
	// JobStatusInProgress indicates the translation session is underway.
	JobStatusInProgress JobStatus = "in_progress"
	// JobStatusCompleted indicates the session finished successfully.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCancelled indicates the job was cancelled. Terminal.
	JobStatusCancelled JobStatus = "cancelled"
	// JobStatusNotCalled indicates the customer never called in. Terminal.
	JobStatusNotCalled JobStatus = "not_called"
)

// Valid returns true if the JobStatus is valid.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusCreated, JobStatusPending, JobStatusAssigned, JobStatusAccepted,
		JobStatusInProgress, JobStatusCompleted, JobStatusCancelled, JobStatusNotCalled:
		return true
	}
	return false
}

// Terminal reports whether the status is an end state of the lifecycle.
// Terminal states are never deleted; they are the durable record of the job.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled || s == JobStatusNotCalled
}

// UnmarshalText implements encoding.TextUnmarshaler for JobStatus.
func (s *JobStatus) UnmarshalText(text []byte) error {
	v := JobStatus(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus: %q", string(text))
	}
	*s = v
	return nil
}

// Job represents a translation job with its lifecycle state and operational metadata.
type Job struct {
	ID                 string     `json:"id"                             db:"id"`
	Status             JobStatus  `json:"status"                         db:"status"`
	CustomerID         string     `json:"customer_id"                    db:"customer_id"`
	TranslatorID       *string    `json:"translator_id,omitempty"        db:"translator_id"`
	Title              string     `json:"title"                          db:"title"`
	Body               string     `json:"body"                           db:"body"`
	LanguageFrom       string     `json:"language_from"                  db:"language_from"`
	LanguageTo         string     `json:"language_to"                    db:"language_to"`
	Region             string     `json:"region"                         db:"region"`
	UserEmail          *string    `json:"user_email,omitempty"           db:"user_email"`
	Reference          *string    `json:"reference,omitempty"            db:"reference"`
	SessionTimeSeconds *int64     `json:"session_time_seconds,omitempty" db:"session_time_seconds"`
	SessionEndedAt     *time.Time `json:"session_ended_at,omitempty"     db:"session_ended_at"`
	WithdrawnAt        *time.Time `json:"withdrawn_at,omitempty"         db:"withdrawn_at"`
	AdminComments      *string    `json:"admin_comments,omitempty"       db:"admin_comments"`
	Flagged            bool       `json:"flagged"                        db:"flagged"`
	ManuallyHandled    bool       `json:"manually_handled"               db:"manually_handled"`
	ByAdmin            bool       `json:"by_admin"                       db:"by_admin"`
	CreatedAt          time.Time  `json:"created_at"                     db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"                     db:"updated_at"`
}

// JobWithTranslator pairs a job with its accepted translator relation, when present.
type JobWithTranslator struct {
	Job
	Translator *Translator `json:"translator,omitempty"`
}

// DistanceRecord holds travel distance and duration reported for a job.
// One-to-one with Job, written independently of the job's status columns.
type DistanceRecord struct {
	JobID           string   `json:"job_id"                     db:"job_id"`
	DistanceKm      *float64 `json:"distance_km,omitempty"      db:"distance_km"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" db:"duration_minutes"`
}

// CreateJobRequest represents a request to create a new job.
type CreateJobRequest struct {
	CustomerID   string `json:"customer_id"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	LanguageFrom string `json:"language_from"`
	LanguageTo   string `json:"language_to"`
	Region       string `json:"region,omitempty"`
	ByAdmin      bool   `json:"by_admin,omitempty"`
}

const maxTitleLength = 255

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return errors.New("customer_id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if len(r.Title) > maxTitleLength {
		return fmt.Errorf("title cannot exceed %d characters", maxTitleLength)
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("body is required")
	}
	if strings.TrimSpace(r.LanguageFrom) == "" {
		return errors.New("language_from is required")
	}
	if strings.TrimSpace(r.LanguageTo) == "" {
		return errors.New("language_to is required")
	}
	return nil
}

// UpdateJobRequest is a partial update of a job's descriptive fields.
// Nil fields are left unchanged. Lifecycle and admin columns are out of
// reach here; those go through the lifecycle engine and MetadataPatch.
type UpdateJobRequest struct {
	Title        *string `json:"title,omitempty"`
	Body         *string `json:"body,omitempty"`
	LanguageFrom *string `json:"language_from,omitempty"`
	LanguageTo   *string `json:"language_to,omitempty"`
	Region       *string `json:"region,omitempty"`
}

// Empty reports whether the request updates nothing.
func (r *UpdateJobRequest) Empty() bool {
	return r.Title == nil && r.Body == nil && r.LanguageFrom == nil &&
		r.LanguageTo == nil && r.Region == nil
}

// Validate validates the UpdateJobRequest fields.
func (r *UpdateJobRequest) Validate() error {
	if r.Empty() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return errors.New("title cannot be empty")
		}
		if len(*r.Title) > maxTitleLength {
			return fmt.Errorf("title cannot exceed %d characters", maxTitleLength)
		}
	}
	if r.Body != nil && strings.TrimSpace(*r.Body) == "" {
		return errors.New("body cannot be empty")
	}
	return nil
}

// MetadataPatch is a partial update of a job's admin metadata.
// Nil fields are left unchanged. The patch is validated as a unit before any
// write so that a flagged-without-comment request rejects atomically.
type MetadataPatch struct {
	SessionTimeSeconds *int64  `json:"session_time_seconds,omitempty"`
	AdminComments      *string `json:"admin_comments,omitempty"`
	Flagged            *bool   `json:"flagged,omitempty"`
	ManuallyHandled    *bool   `json:"manually_handled,omitempty"`
	ByAdmin            *bool   `json:"by_admin,omitempty"`
}

// Empty reports whether the patch updates nothing.
func (p *MetadataPatch) Empty() bool {
	return p.SessionTimeSeconds == nil && p.AdminComments == nil &&
		p.Flagged == nil && p.ManuallyHandled == nil && p.ByAdmin == nil
}

// Validate enforces the flagged/comment invariant: a patch that sets
// flagged=true must carry a non-empty admin comment.
func (p *MetadataPatch) Validate() error {
	if p.Flagged != nil && *p.Flagged {
		if p.AdminComments == nil || strings.TrimSpace(*p.AdminComments) == "" {
			return errors.New("a flagged job requires an admin comment")
		}
	}
	if p.SessionTimeSeconds != nil && *p.SessionTimeSeconds < 0 {
		return errors.New("session time must be non-negative")
	}
	return nil
}

// DistancePatch is a partial update of a job's distance record.
type DistancePatch struct {
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

// Empty reports whether the patch updates nothing.
func (p *DistancePatch) Empty() bool {
	return p.DistanceKm == nil && p.DurationMinutes == nil
}

// Validate validates the DistancePatch fields.
func (p *DistancePatch) Validate() error {
	if p.DistanceKm != nil && *p.DistanceKm < 0 {
		return errors.New("distance must be non-negative")
	}
	if p.DurationMinutes != nil && *p.DurationMinutes < 0 {
		return errors.New("duration must be non-negative")
	}
	return nil
}

// JobFilter narrows admin job listings.
type JobFilter struct {
	Status       *JobStatus `json:"status,omitempty"`
	CustomerID   *string    `json:"customer_id,omitempty"`
	TranslatorID *string    `json:"translator_id,omitempty"`
	CreatedFrom  *time.Time `json:"created_from,omitempty"`
	CreatedTo    *time.Time `json:"created_to,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
}

// HistoryFilter narrows a user's job history listing.
// UserID is required; AsTranslator selects the translator side of the
// relation instead of the customer side.
type HistoryFilter struct {
	UserID       string     `json:"user_id"`
	AsTranslator bool       `json:"as_translator,omitempty"`
	Status       *JobStatus `json:"status,omitempty"`
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
}

// ParseSessionTime converts a session time value to whole seconds.
// It accepts the legacy "HH:MM:SS" and "MM:SS" clock formats as well as a
// bare number of seconds.
func ParseSessionTime(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("session time is empty")
	}

	if !strings.Contains(value, ":") {
		secs, err := strconv.ParseInt(value, 10, 64)
		if err != nil || secs < 0 {
			return 0, fmt.Errorf("invalid session time: %q", value)
		}
		return secs, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid session time: %q", value)
	}

	var total int64
	for _, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid session time: %q", value)
		}
		total = total*60 + n
	}
	return total, nil
}
