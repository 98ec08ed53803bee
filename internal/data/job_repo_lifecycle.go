package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dtapi/booking-go/internal/core"
	"github.com/dtapi/booking-go/internal/data/pgxutil"
	"github.com/dtapi/booking-go/internal/domain/model"
)

// ConditionalUpdate applies a status transition guarded by the set of
// expected source statuses. The WHERE clause is the single serialization
// point for the lifecycle: of two racing writers, exactly one matches the
// row. It returns ErrNotUpdated when no row matched.
func (r *JobRepo) ConditionalUpdate(
	ctx context.Context,
	params core.ConditionalUpdateParams,
) (*model.Job, error) {
	if strings.TrimSpace(params.JobID) == "" {
		return nil, ErrJobIDRequired
	}
	if !params.Target.Valid() {
		return nil, fmt.Errorf("invalid target status: %q", params.Target)
	}
	if len(params.Expected) == 0 {
		return nil, errors.New("expected statuses are required")
	}

	expected := make([]string, len(params.Expected))
	for i, s := range params.Expected {
		expected[i] = string(s)
	}

	set := []string{"status = $1", "updated_at = now()"}
	args := []any{string(params.Target)}
	idx := 2

	if params.TranslatorID != nil {
		if *params.TranslatorID == "" {
			set = append(set, "translator_id = NULL")
		} else {
			set = append(set, fmt.Sprintf("translator_id = $%d", idx))
			args = append(args, *params.TranslatorID)
			idx++
		}
	}
	if params.SessionEndedAt != nil {
		set = append(set, fmt.Sprintf("session_ended_at = $%d", idx))
		args = append(args, params.SessionEndedAt.UTC())
		idx++
	}
	if params.SessionTimeSeconds != nil {
		set = append(set, fmt.Sprintf("session_time_seconds = $%d", idx))
		args = append(args, *params.SessionTimeSeconds)
		idx++
	}
	if params.WithdrawnAt != nil {
		set = append(set, fmt.Sprintf("withdrawn_at = $%d", idx))
		args = append(args, params.WithdrawnAt.UTC())
		idx++
	}

	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d AND status = ANY($%d) RETURNING `+jobColumns,
		strings.Join(set, ", "), idx, idx+1,
	)
	args = append(args, params.JobID, expected)

	var job *model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, args...)
		if qerr != nil {
			return fmt.Errorf("conditional update: %w", qerr)
		}
		collected, cerr := collectJob(rows)
		if cerr != nil {
			if errors.Is(cerr, pgx.ErrNoRows) {
				return ErrNotUpdated
			}
			return fmt.Errorf("collect updated job: %w", cerr)
		}
		job = collected
		return nil
	}); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateDetails applies a partial update of the job's descriptive fields.
func (r *JobRepo) UpdateDetails(
	ctx context.Context,
	id string,
	req model.UpdateJobRequest,
) (*model.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrJobIDRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	set := []string{"updated_at = now()"}
	args := []any{}
	idx := 1

	addSet := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}
	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Body != nil {
		addSet("body", *req.Body)
	}
	if req.LanguageFrom != nil {
		addSet("language_from", *req.LanguageFrom)
	}
	if req.LanguageTo != nil {
		addSet("language_to", *req.LanguageTo)
	}
	if req.Region != nil {
		addSet("region", *req.Region)
	}

	return r.updateReturning(ctx, updateReturningParams{Set: set, Args: args, ID: id, NextIdx: idx})
}

// UpdateMetadata applies a partial update of the job's admin metadata.
// The patch must already be validated; the flagged/comment CHECK constraint
// still backstops the invariant at the database.
func (r *JobRepo) UpdateMetadata(
	ctx context.Context,
	id string,
	patch model.MetadataPatch,
) (*model.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrJobIDRequired
	}
	if patch.Empty() {
		return nil, errors.New("metadata patch is empty")
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	set := []string{"updated_at = now()"}
	args := []any{}
	idx := 1

	addSet := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}
	if patch.SessionTimeSeconds != nil {
		addSet("session_time_seconds", *patch.SessionTimeSeconds)
	}
	if patch.AdminComments != nil {
		addSet("admin_comments", *patch.AdminComments)
	}
	if patch.Flagged != nil {
		addSet("flagged", *patch.Flagged)
	}
	if patch.ManuallyHandled != nil {
		addSet("manually_handled", *patch.ManuallyHandled)
	}
	if patch.ByAdmin != nil {
		addSet("by_admin", *patch.ByAdmin)
	}

	return r.updateReturning(ctx, updateReturningParams{Set: set, Args: args, ID: id, NextIdx: idx})
}

// SetJobEmail records the booking email address and optional reference.
func (r *JobRepo) SetJobEmail(
	ctx context.Context,
	params core.SetJobEmailParams,
) (*model.Job, error) {
	if strings.TrimSpace(params.JobID) == "" {
		return nil, ErrJobIDRequired
	}
	if strings.TrimSpace(params.UserEmail) == "" {
		return nil, errors.New("user email is required")
	}

	set := []string{"updated_at = now()", "user_email = $1"}
	args := []any{params.UserEmail}
	idx := 2
	if params.Reference != nil {
		set = append(set, fmt.Sprintf("reference = $%d", idx))
		args = append(args, *params.Reference)
		idx++
	}

	return r.updateReturning(ctx, updateReturningParams{Set: set, Args: args, ID: params.JobID, NextIdx: idx})
}

// updateReturningParams groups parameters for updateReturning to keep param count <=3.
type updateReturningParams struct {
	Set     []string
	Args    []any
	ID      string
	NextIdx int
}

func (r *JobRepo) updateReturning(ctx context.Context, p updateReturningParams) (*model.Job, error) {
	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d RETURNING `+jobColumns,
		strings.Join(p.Set, ", "), p.NextIdx,
	)
	args := append(p.Args, p.ID)

	var job *model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, args...)
		if qerr != nil {
			return fmt.Errorf("update job: %w", qerr)
		}
		collected, cerr := collectJob(rows)
		if cerr != nil {
			return cerr
		}
		job = collected
		return nil
	}); err != nil {
		return nil, err
	}

	return job, nil
}
