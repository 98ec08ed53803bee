package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtapi/booking-go/internal/domain/model"
	apperrors "github.com/dtapi/booking-go/internal/errors"
	"github.com/dtapi/booking-go/internal/notify"
)

// DistanceFeedRow is one job's worth of the distance feed: travel figures
// plus optional admin metadata, batched by an external reporting system.
type DistanceFeedRow struct {
	JobID           string   `json:"job_id"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	SessionTime     *string  `json:"session_time,omitempty"`
	AdminComments   *string  `json:"admin_comments,omitempty"`
	Flagged         *bool    `json:"flagged,omitempty"`
	ManuallyHandled *bool    `json:"manually_handled,omitempty"`
	ByAdmin         *bool    `json:"by_admin,omitempty"`
}

// DistanceFeedRequest is the batch payload for ApplyDistanceFeed.
type DistanceFeedRequest struct {
	Rows []DistanceFeedRow `json:"rows"`
}

// distance extracts the row's distance patch, or an empty patch.
func (r DistanceFeedRow) distance() model.DistancePatch {
	return model.DistancePatch{
		DistanceKm:      r.DistanceKm,
		DurationMinutes: r.DurationMinutes,
	}
}

// metadata builds the row's admin metadata patch. SessionTime parses with the
// same clock formats the lifecycle engine accepts.
func (r DistanceFeedRow) metadata() (model.MetadataPatch, error) {
	patch := model.MetadataPatch{
		AdminComments:   r.AdminComments,
		Flagged:         r.Flagged,
		ManuallyHandled: r.ManuallyHandled,
		ByAdmin:         r.ByAdmin,
	}
	if r.SessionTime != nil && strings.TrimSpace(*r.SessionTime) != "" {
		seconds, err := model.ParseSessionTime(*r.SessionTime)
		if err != nil {
			return patch, err
		}
		patch.SessionTimeSeconds = &seconds
	}
	return patch, nil
}

// ApplyDistanceFeed validates the whole batch first and only then writes.
// A single invalid row (missing job id, flagged without a comment, negative
// distance) rejects the batch before any job is touched. Returns the number
// of rows applied.
func (s *BookingService) ApplyDistanceFeed(ctx context.Context, req DistanceFeedRequest) (int, error) {
	if len(req.Rows) == 0 {
		return 0, apperrors.Validation("feed contains no rows")
	}

	type prepared struct {
		jobID    string
		distance model.DistancePatch
		metadata model.MetadataPatch
	}

	rows := make([]prepared, 0, len(req.Rows))
	for i, row := range req.Rows {
		if strings.TrimSpace(row.JobID) == "" {
			return 0, apperrors.Validationf("row %d: job_id is required", i)
		}
		distance := row.distance()
		if err := distance.Validate(); err != nil {
			return 0, apperrors.Validationf("row %d: %v", i, err)
		}
		metadata, err := row.metadata()
		if err != nil {
			return 0, apperrors.Validationf("row %d: %v", i, err)
		}
		if err := metadata.Validate(); err != nil {
			return 0, apperrors.Validationf("row %d: %v", i, err)
		}
		if distance.Empty() && metadata.Empty() {
			return 0, apperrors.Validationf("row %d: no fields to update", i)
		}
		rows = append(rows, prepared{jobID: row.JobID, distance: distance, metadata: metadata})
	}

	applied := 0
	for _, row := range rows {
		if !row.distance.Empty() {
			if err := s.repo.UpsertDistance(ctx, row.jobID, row.distance); err != nil {
				return applied, fmt.Errorf("apply distance for job %s: %w", row.jobID, apperrors.MapDBError(err))
			}
		}
		if !row.metadata.Empty() {
			if _, err := s.repo.UpdateMetadata(ctx, row.jobID, row.metadata); err != nil {
				return applied, fmt.Errorf("apply metadata for job %s: %w", row.jobID, apperrors.MapDBError(err))
			}
		}
		applied++
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "distance feed applied", "rows", applied)
	}
	return applied, nil
}

// ResendNotifications re-offers a job through every channel without changing
// its state.
func (s *BookingService) ResendNotifications(ctx context.Context, jobID string) (DispatchSummary, error) {
	return s.resend(ctx, jobID, "")
}

// ResendSmsNotifications re-offers a job through SMS sinks only.
func (s *BookingService) ResendSmsNotifications(ctx context.Context, jobID string) (DispatchSummary, error) {
	return s.resend(ctx, jobID, notify.ChannelSMS)
}

func (s *BookingService) resend(ctx context.Context, jobID, channel string) (DispatchSummary, error) {
	var summary DispatchSummary
	if s.dispatcher == nil || !s.dispatcher.Enabled() {
		return summary, apperrors.Internal("no notification sinks are configured")
	}

	job, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return summary, apperrors.MapDBError(err)
	}

	// A resend never touches job state, so any existing job qualifies.
	candidates := []string{CandidateAll}
	if channel == "" {
		summary, err = s.dispatcher.Dispatch(ctx, job, notify.KindOffer, candidates)
	} else {
		summary, err = s.dispatcher.DispatchChannel(ctx, job, notify.KindOffer, candidates, channel)
	}
	if err != nil {
		return summary, apperrors.Wrap(err, apperrors.ErrCodeInternal, "resend notifications")
	}
	return summary, nil
}
