package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dtapi/booking-go/internal/data/pgxutil"
	"github.com/dtapi/booking-go/internal/domain/model"
)

// UpsertDistance writes the travel distance record for a job. Only the
// fields present in the patch are overwritten on conflict.
func (r *JobRepo) UpsertDistance(ctx context.Context, jobID string, patch model.DistancePatch) error {
	if strings.TrimSpace(jobID) == "" {
		return ErrJobIDRequired
	}
	if patch.Empty() {
		return errors.New("distance patch is empty")
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	query := `
      INSERT INTO distances (job_id, distance_km, duration_minutes, updated_at)
      VALUES ($1, $2, $3, now())
      ON CONFLICT (job_id) DO UPDATE
      SET distance_km      = COALESCE(EXCLUDED.distance_km, distances.distance_km),
          duration_minutes = COALESCE(EXCLUDED.duration_minutes, distances.duration_minutes),
          updated_at       = now()
    `

	_, err := r.DB.ExecContext(ctx, query, jobID, patch.DistanceKm, patch.DurationMinutes)
	if err != nil {
		return fmt.Errorf("upsert distance: %w", err)
	}
	return nil
}

// GetDistance fetches the distance record for a job. Returns pgx.ErrNoRows
// when the job has no record yet.
func (r *JobRepo) GetDistance(ctx context.Context, jobID string) (*model.DistanceRecord, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrJobIDRequired
	}

	query := `SELECT job_id, distance_km, duration_minutes FROM distances WHERE job_id = $1`

	var record *model.DistanceRecord
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, jobID)
		if qerr != nil {
			return fmt.Errorf("query distance: %w", qerr)
		}
		collected, cerr := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.DistanceRecord])
		if cerr != nil {
			return cerr
		}
		record = collected
		return nil
	}); err != nil {
		return nil, err
	}

	return record, nil
}
