package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/dtapi/booking-go/internal/data/pgxutil"
	"github.com/dtapi/booking-go/internal/domain/model"
)

// RepoConfig holds configuration options for the job repository.
type RepoConfig struct {
	Logger       *slog.Logger
	TimeProvider TimeProvider
}

// JobRepo provides database operations for booking jobs.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

// NewJobRepo creates a new JobRepo instance with the given database connection and configuration.
func NewJobRepo(db *sql.DB, cfg RepoConfig) *JobRepo {
	tp := cfg.TimeProvider
	if tp == nil {
		tp = &RealTimeProvider{}
	}

	return &JobRepo{
		DB:           db,
		timeProvider: tp,
		logger:       cfg.Logger,
	}
}

const jobColumns = `
  id,
  status,
  customer_id,
  translator_id,
  title,
  body,
  language_from,
  language_to,
  region,
  user_email,
  reference,
  session_time_seconds,
  session_ended_at,
  withdrawn_at,
  admin_comments,
  flagged,
  manually_handled,
  by_admin,
  created_at,
  updated_at
`

// Create inserts a new job open for bidding and returns the stored row.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := `
      INSERT INTO jobs(status, customer_id, title, body, language_from, language_to, region, by_admin, created_at, updated_at)
      VALUES ('pending',$1,$2,$3,$4,$5,$6,$7,$8,$8)
      RETURNING ` + jobColumns

	now := r.timeProvider.Now().UTC()

	var job *model.Job
	if txErr := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			rows, err := tx.Query(ctx, query,
				req.CustomerID, req.Title, req.Body,
				req.LanguageFrom, req.LanguageTo, req.Region,
				req.ByAdmin, now,
			)
			if err != nil {
				return fmt.Errorf("insert job: %w", err)
			}
			job, err = collectJob(rows)
			if err != nil {
				return fmt.Errorf("collect job: %w", err)
			}

			// Wake any dispatcher listening for new open jobs.
			if _, execErr := tx.Exec(ctx, `SELECT pg_notify('job_opened', $1::text)`, job.ID); execErr != nil {
				return fmt.Errorf("send job notification: %w", execErr)
			}
			return nil
		},
	}); txErr != nil {
		return nil, txErr
	}

	return job, nil
}

// GetByID fetches a job by id. Returns pgx.ErrNoRows when absent.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrJobIDRequired
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job *model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, id)
		if err != nil {
			return fmt.Errorf("query job: %w", err)
		}
		job, err = collectJob(rows)
		return err
	}); err != nil {
		return nil, err
	}

	return job, nil
}

// GetWithTranslator fetches a job together with its accepted translator, if any.
func (r *JobRepo) GetWithTranslator(ctx context.Context, id string) (*model.JobWithTranslator, error) {
	job, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.JobWithTranslator{Job: *job}
	if job.TranslatorID == nil {
		return result, nil
	}

	query := `SELECT ` + translatorColumns + ` FROM translators WHERE id = $1`
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, *job.TranslatorID)
		if qerr != nil {
			return fmt.Errorf("query translator: %w", qerr)
		}
		translator, cerr := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Translator])
		if cerr != nil {
			if errors.Is(cerr, pgx.ErrNoRows) {
				// Assignment points at a removed translator; surface the job anyway.
				return nil
			}
			return fmt.Errorf("collect translator: %w", cerr)
		}
		result.Translator = translator
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// collectJob collects a single job from pgx rows using pgx v5 helpers.
func collectJob(rows pgx.Rows) (*model.Job, error) {
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Job])
}

// collectJobs collects all jobs from pgx rows.
func collectJobs(rows pgx.Rows) ([]*model.Job, error) {
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Job])
}
