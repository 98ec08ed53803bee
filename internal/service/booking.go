package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtapi/booking-go/internal/core"
	"github.com/dtapi/booking-go/internal/data"
	"github.com/dtapi/booking-go/internal/domain/auth"
	"github.com/dtapi/booking-go/internal/domain/booking"
	"github.com/dtapi/booking-go/internal/domain/model"
	apperrors "github.com/dtapi/booking-go/internal/errors"
	"github.com/dtapi/booking-go/internal/notify"
)

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	Repo       core.JobRepository // Required: job repository
	Dispatcher *Dispatcher        // Optional: notification fan-out
	Logger     *slog.Logger       // Optional: structured logger
	Time       data.TimeProvider  // Optional: clock override for tests
}

// BookingService drives the job lifecycle. Every transition consults the
// domain transition table first and is then applied through the store's
// conditional update, so a caller who loses a race gets Conflict rather than
// a silent overwrite.
type BookingService struct {
	repo       core.JobRepository
	dispatcher *Dispatcher
	logger     *slog.Logger
	time       data.TimeProvider
}

// NewBookingService constructs a BookingService.
func NewBookingService(opts BookingServiceOptions) (*BookingService, error) {
	if opts.Repo == nil {
		return nil, errors.New("JobRepository is required")
	}

	timeProvider := opts.Time
	if timeProvider == nil {
		timeProvider = &data.RealTimeProvider{}
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "booking_service")
	}

	return &BookingService{
		repo:       opts.Repo,
		dispatcher: opts.Dispatcher,
		logger:     logger,
		time:       timeProvider,
	}, nil
}

// MustNewBookingService constructs a BookingService and panics on error.
// Use this when you're certain the options are valid (e.g., in main.go).
func MustNewBookingService(opts BookingServiceOptions) *BookingService {
	svc, err := NewBookingService(opts)
	if err != nil {
		//nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
		panic(fmt.Sprintf("failed to create BookingService: %v", err))
	}
	return svc
}

// Create validates and stores a new job, then offers it to eligible
// translators. The offer is best effort; a dispatch problem never unwinds
// the stored job.
func (s *BookingService) Create(ctx context.Context, actor auth.Session, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if actor.Role.CanViewAllJobs() {
		req.ByAdmin = true
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "job created", "job_id", job.ID, "customer_id", job.CustomerID)
	}

	s.offer(ctx, job, notify.KindOffer)
	return job, nil
}

// AcceptJob binds a translator to an open job. Exactly one concurrent caller
// wins; the rest get Conflict.
func (s *BookingService) AcceptJob(ctx context.Context, jobID, translatorID string) (*model.Job, error) {
	if strings.TrimSpace(translatorID) == "" {
		return nil, apperrors.ValidationField("translator_id", "translator_id is required")
	}

	rule, ok := booking.RuleFor(booking.OpAccept)
	if !ok {
		return nil, apperrors.Internal("transition table is missing the accept rule")
	}

	job, err := s.repo.ConditionalUpdate(ctx, core.ConditionalUpdateParams{
		JobID:        jobID,
		Expected:     rule.Sources,
		Target:       rule.Target,
		TranslatorID: &translatorID,
	})
	if err != nil {
		return nil, s.resolveTransitionFailure(ctx, jobID, booking.OpAccept, err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "job accepted", "job_id", job.ID, "translator_id", translatorID)
	}

	s.notifyCustomer(ctx, job, notify.KindAccepted)
	return job, nil
}

// CancelJob withdraws a job. Cancelling an already-cancelled job is a no-op
// that returns the current state.
func (s *BookingService) CancelJob(ctx context.Context, jobID string) (*model.Job, error) {
	rule, ok := booking.RuleFor(booking.OpCancel)
	if !ok {
		return nil, apperrors.Internal("transition table is missing the cancel rule")
	}

	now := s.time.Now()
	job, err := s.repo.ConditionalUpdate(ctx, core.ConditionalUpdateParams{
		JobID:       jobID,
		Expected:    rule.Sources,
		Target:      rule.Target,
		WithdrawnAt: &now,
	})
	if err != nil {
		if errors.Is(err, data.ErrNotUpdated) {
			current, readErr := s.repo.GetByID(ctx, jobID)
			if readErr != nil {
				return nil, apperrors.MapDBError(readErr)
			}
			if current.Status == model.JobStatusCancelled {
				return current, nil
			}
			return nil, apperrors.InvalidTransitionf("cannot cancel a job in status %q", current.Status)
		}
		return nil, apperrors.MapDBError(err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "job cancelled", "job_id", job.ID)
	}

	if job.TranslatorID != nil && *job.TranslatorID != "" {
		s.notifyTranslator(ctx, job, notify.KindCancelled, *job.TranslatorID)
	}
	return job, nil
}

// StartJob moves an accepted job into its live session.
func (s *BookingService) StartJob(ctx context.Context, jobID string) (*model.Job, error) {
	rule, ok := booking.RuleFor(booking.OpStart)
	if !ok {
		return nil, apperrors.Internal("transition table is missing the start rule")
	}

	job, err := s.repo.ConditionalUpdate(ctx, core.ConditionalUpdateParams{
		JobID:    jobID,
		Expected: rule.Sources,
		Target:   rule.Target,
	})
	if err != nil {
		return nil, s.resolveTransitionFailure(ctx, jobID, booking.OpStart, err)
	}
	return job, nil
}

// EndJob completes a job and records the session duration. sessionTime
// accepts "HH:MM:SS", "MM:SS" or a bare number of seconds; empty means the
// duration is unknown and only the end timestamp is recorded.
func (s *BookingService) EndJob(ctx context.Context, jobID, sessionTime string) (*model.Job, error) {
	rule, ok := booking.RuleFor(booking.OpEnd)
	if !ok {
		return nil, apperrors.Internal("transition table is missing the end rule")
	}

	params := core.ConditionalUpdateParams{
		JobID:    jobID,
		Expected: rule.Sources,
		Target:   rule.Target,
	}
	now := s.time.Now()
	params.SessionEndedAt = &now
	if strings.TrimSpace(sessionTime) != "" {
		seconds, err := model.ParseSessionTime(sessionTime)
		if err != nil {
			return nil, apperrors.ValidationField("session_time", err.Error())
		}
		params.SessionTimeSeconds = &seconds
	}

	job, err := s.repo.ConditionalUpdate(ctx, params)
	if err != nil {
		return nil, s.resolveTransitionFailure(ctx, jobID, booking.OpEnd, err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "job completed", "job_id", job.ID)
	}

	if job.TranslatorID != nil && *job.TranslatorID != "" {
		s.notifyTranslator(ctx, job, notify.KindSessionEnded, *job.TranslatorID)
	}
	s.notifyCustomer(ctx, job, notify.KindSessionEnded)
	return job, nil
}

// CustomerNotCall records a customer no-show on an accepted job.
func (s *BookingService) CustomerNotCall(ctx context.Context, jobID string) (*model.Job, error) {
	rule, ok := booking.RuleFor(booking.OpNotCall)
	if !ok {
		return nil, apperrors.Internal("transition table is missing the not_call rule")
	}

	job, err := s.repo.ConditionalUpdate(ctx, core.ConditionalUpdateParams{
		JobID:    jobID,
		Expected: rule.Sources,
		Target:   rule.Target,
	})
	if err != nil {
		return nil, s.resolveTransitionFailure(ctx, jobID, booking.OpNotCall, err)
	}
	return job, nil
}

// Reopen returns a cancelled or not-called job to the bidding pool, clearing
// the previous assignment, and re-offers it.
func (s *BookingService) Reopen(ctx context.Context, jobID string) (*model.Job, error) {
	rule, ok := booking.RuleFor(booking.OpReopen)
	if !ok {
		return nil, apperrors.Internal("transition table is missing the reopen rule")
	}

	clear := ""
	job, err := s.repo.ConditionalUpdate(ctx, core.ConditionalUpdateParams{
		JobID:        jobID,
		Expected:     rule.Sources,
		Target:       rule.Target,
		TranslatorID: &clear,
	})
	if err != nil {
		return nil, s.resolveTransitionFailure(ctx, jobID, booking.OpReopen, err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "job reopened", "job_id", job.ID)
	}

	s.offer(ctx, job, notify.KindReopened)
	return job, nil
}

// UpdateJob applies a partial update of the job's descriptive fields.
func (s *BookingService) UpdateJob(ctx context.Context, jobID string, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.repo.UpdateDetails(ctx, jobID, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// UpdateJobMetadata applies an admin metadata patch. The patch validates as
// a unit before any write, so flagged-without-comment never reaches the store.
func (s *BookingService) UpdateJobMetadata(ctx context.Context, jobID string, patch model.MetadataPatch) (*model.Job, error) {
	if patch.Empty() {
		return nil, apperrors.Validation("at least one field must be updated")
	}
	if err := patch.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.repo.UpdateMetadata(ctx, jobID, patch)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// StoreJobEmail records the customer's contact email on the job and sends a
// confirmation. The confirmation is best effort.
func (s *BookingService) StoreJobEmail(ctx context.Context, params core.SetJobEmailParams) (*model.Job, error) {
	if strings.TrimSpace(params.UserEmail) == "" {
		return nil, apperrors.ValidationField("user_email", "user_email is required")
	}

	job, err := s.repo.SetJobEmail(ctx, params)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	s.notifyCustomer(ctx, job, notify.KindConfirmation)
	return job, nil
}

// resolveTransitionFailure turns a failed conditional update into the right
// taxonomy error: missing job, lost race, or an operation that is simply not
// legal from the job's current state.
func (s *BookingService) resolveTransitionFailure(ctx context.Context, jobID string, op booking.Operation, err error) error {
	if !errors.Is(err, data.ErrNotUpdated) {
		return apperrors.MapDBError(err)
	}

	current, readErr := s.repo.GetByID(ctx, jobID)
	if readErr != nil {
		return apperrors.MapDBError(readErr)
	}

	if op == booking.OpAccept &&
		(current.Status == model.JobStatusAccepted || current.Status == model.JobStatusInProgress) {
		return apperrors.Conflict("job has already been taken")
	}
	return apperrors.InvalidTransitionf("cannot %s a job in status %q", op, current.Status)
}

// offer fans a job announcement out to every eligible translator.
func (s *BookingService) offer(ctx context.Context, job *model.Job, kind notify.Kind) {
	if s.dispatcher == nil || !s.dispatcher.Enabled() {
		return
	}
	summary, err := s.dispatcher.Dispatch(ctx, job, kind, []string{CandidateAll})
	s.logDispatch(ctx, job, kind, summary, err)
}

func (s *BookingService) notifyTranslator(ctx context.Context, job *model.Job, kind notify.Kind, translatorID string) {
	if s.dispatcher == nil || !s.dispatcher.Enabled() {
		return
	}
	summary, err := s.dispatcher.Dispatch(ctx, job, kind, []string{translatorID})
	s.logDispatch(ctx, job, kind, summary, err)
}

// notifyCustomer delivers to the email address stored on the job, when there
// is one. Customers are not translators, so this bypasses candidate
// resolution entirely.
func (s *BookingService) notifyCustomer(ctx context.Context, job *model.Job, kind notify.Kind) {
	if s.dispatcher == nil || !s.dispatcher.Enabled() {
		return
	}
	if job.UserEmail == nil || strings.TrimSpace(*job.UserEmail) == "" {
		return
	}
	summary := s.dispatcher.DispatchContacts(ctx, job, kind, []*model.Contact{
		{Email: *job.UserEmail},
	})
	s.logDispatch(ctx, job, kind, summary, nil)
}

func (s *BookingService) logDispatch(ctx context.Context, job *model.Job, kind notify.Kind, summary DispatchSummary, err error) {
	if s.logger == nil {
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "notification dispatch failed",
			"job_id", job.ID, "kind", string(kind), "error", err)
		return
	}
	s.logger.DebugContext(ctx, "notifications dispatched",
		"job_id", job.ID, "kind", string(kind),
		"attempted", summary.Attempted, "failed", summary.Failed)
}
