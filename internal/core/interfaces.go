package core

import (
	"context"
	"time"

	"github.com/dtapi/booking-go/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// ConditionalUpdateParams groups parameters for JobRepository.ConditionalUpdate
// to keep param count ≤3.
type ConditionalUpdateParams struct {
	JobID    string
	Expected []model.JobStatus
	Target   model.JobStatus

	// TranslatorID, when non-nil, is written alongside the status change.
	// An empty string clears the assignment (reopen).
	TranslatorID *string

	// SessionEndedAt, when non-nil, records the session end timestamp (end job).
	SessionEndedAt *time.Time

	// SessionTimeSeconds, when non-nil, records the session duration (end job).
	SessionTimeSeconds *int64

	// WithdrawnAt, when non-nil, records when the job was withdrawn (cancel).
	WithdrawnAt *time.Time
}

// SetJobEmailParams groups parameters for JobRepository.SetJobEmail.
type SetJobEmailParams struct {
	JobID     string
	UserEmail string
	Reference *string
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	GetWithTranslator(ctx context.Context, id string) (*model.JobWithTranslator, error)

	// ConditionalUpdate applies a status transition only when the job's current
	// status is one of params.Expected. It returns ErrNotUpdated from the data
	// package when no row matched; callers re-read to tell a missing job from a
	// lost race.
	ConditionalUpdate(ctx context.Context, params ConditionalUpdateParams) (*model.Job, error)

	UpdateDetails(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error)
	UpdateMetadata(ctx context.Context, id string, patch model.MetadataPatch) (*model.Job, error)
	SetJobEmail(ctx context.Context, params SetJobEmailParams) (*model.Job, error)

	UpsertDistance(ctx context.Context, jobID string, patch model.DistancePatch) error
	GetDistance(ctx context.Context, jobID string) (*model.DistanceRecord, error)

	ListByUser(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
	ListHistory(ctx context.Context, filter model.HistoryFilter) ([]*model.Job, int, error)
	ListOpen(ctx context.Context) ([]*model.Job, error)
	ListAll(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
}

// TranslatorRepository defines the interface for translator data operations.
type TranslatorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Translator, error)
	ListActive(ctx context.Context) ([]*model.Translator, error)
	ContactsByIDs(ctx context.Context, ids []string) ([]*model.Contact, error)
}

// ContactCache caches translator contact details so notification fan-out does
// not hit the database for every recipient.
type ContactCache interface {
	Get(ctx context.Context, translatorID string) (*model.Contact, bool, error)
	Set(ctx context.Context, contact *model.Contact, ttl time.Duration) error
	Invalidate(ctx context.Context, translatorID string) error
}
