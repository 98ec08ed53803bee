package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtapi/booking-go/internal/core"
	"github.com/dtapi/booking-go/internal/domain/auth"
	"github.com/dtapi/booking-go/internal/domain/model"
	apperrors "github.com/dtapi/booking-go/internal/errors"
)

// QueryServiceOptions groups dependencies for QueryService.
type QueryServiceOptions struct {
	Repo        core.JobRepository        // Required: job repository
	Translators core.TranslatorRepository // Required for PotentialJobs
	Eligibility *EligibilityPolicy        // Optional: nil means every pending job is visible
	Logger      *slog.Logger              // Optional: structured logger
}

// QueryService answers read-side questions about jobs; it never mutates.
type QueryService struct {
	repo        core.JobRepository
	translators core.TranslatorRepository
	eligibility *EligibilityPolicy
	logger      *slog.Logger
}

// NewQueryService constructs a QueryService.
func NewQueryService(opts QueryServiceOptions) (*QueryService, error) {
	if opts.Repo == nil {
		return nil, errors.New("JobRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "query_service")
	}

	return &QueryService{
		repo:        opts.Repo,
		translators: opts.Translators,
		eligibility: opts.Eligibility,
		logger:      logger,
	}, nil
}

// MustNewQueryService constructs a QueryService and panics on error.
func MustNewQueryService(opts QueryServiceOptions) *QueryService {
	svc, err := NewQueryService(opts)
	if err != nil {
		//nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
		panic(fmt.Sprintf("failed to create QueryService: %v", err))
	}
	return svc
}

// GetJob returns one job with its translator relation.
func (s *QueryService) GetJob(ctx context.Context, id string) (*model.JobWithTranslator, error) {
	job, err := s.repo.GetWithTranslator(ctx, id)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// UserJobs lists a user's non-terminal jobs, on either side of the relation.
func (s *QueryService) UserJobs(ctx context.Context, userID string, asTranslator bool) ([]*model.Job, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.ValidationField("user_id", "user_id is required")
	}

	filter := model.JobFilter{}
	if asTranslator {
		filter.TranslatorID = &userID
	} else {
		filter.CustomerID = &userID
	}

	jobs, err := s.repo.ListByUser(ctx, filter)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return jobs, nil
}

// UserJobsHistory lists a user's terminal-status jobs with time filters and
// paging, plus the total match count for the pager.
func (s *QueryService) UserJobsHistory(ctx context.Context, filter model.HistoryFilter) ([]*model.Job, int, error) {
	if strings.TrimSpace(filter.UserID) == "" {
		return nil, 0, apperrors.ValidationField("user_id", "user_id is required")
	}

	jobs, total, err := s.repo.ListHistory(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapDBError(err)
	}
	return jobs, total, nil
}

// PotentialJobs lists the open jobs a translator is eligible to accept.
// Without a configured eligibility policy every pending job qualifies.
func (s *QueryService) PotentialJobs(ctx context.Context, translatorID string) ([]*model.Job, error) {
	if strings.TrimSpace(translatorID) == "" {
		return nil, apperrors.ValidationField("translator_id", "translator_id is required")
	}

	open, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if s.eligibility == nil || len(open) == 0 {
		return open, nil
	}
	if s.translators == nil {
		return nil, apperrors.Internal("eligibility filtering requires a translator repository")
	}

	translator, err := s.translators.GetByID(ctx, translatorID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	translatorDoc := translatorDocument(translator)
	eligible := make([]*model.Job, 0, len(open))
	for _, job := range open {
		ok, err := s.eligibility.Eligible(jobDocument(job), translatorDoc)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "evaluate eligibility")
		}
		if ok {
			eligible = append(eligible, job)
		}
	}
	return eligible, nil
}

// AllJobs is the admin listing. Callers without the admin capability get
// Forbidden regardless of the filter.
func (s *QueryService) AllJobs(ctx context.Context, session auth.Session, filter model.JobFilter) ([]*model.Job, error) {
	if !session.Role.CanViewAllJobs() {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "admin listing denied",
				"user_id", session.UserID, "role", string(session.Role))
		}
		return nil, apperrors.Forbidden("admin capability required")
	}

	jobs, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return jobs, nil
}
