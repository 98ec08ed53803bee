package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dtapi/booking-go/internal/data/pgxutil"
	"github.com/dtapi/booking-go/internal/domain/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// jobFilterQueryBuilder accumulates WHERE conditions with positional args.
type jobFilterQueryBuilder struct {
	query  string
	args   []any
	argIdx int
}

func (b *jobFilterQueryBuilder) addFilter(column string, value any) {
	b.query += fmt.Sprintf(" AND %s = $%d", column, b.argIdx)
	b.args = append(b.args, value)
	b.argIdx++
}

func (b *jobFilterQueryBuilder) addCompare(column, op string, value any) {
	b.query += fmt.Sprintf(" AND %s %s $%d", column, op, b.argIdx)
	b.args = append(b.args, value)
	b.argIdx++
}

// ListByUser returns a user's current (non-terminal) jobs, oldest first.
// The filter's CustomerID or TranslatorID selects which side of the booking
// relation is queried.
func (r *JobRepo) ListByUser(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	b := &jobFilterQueryBuilder{
		query: `SELECT ` + jobColumns + ` FROM jobs
          WHERE status NOT IN ('completed', 'cancelled', 'not_called')`,
		argIdx: 1,
	}

	if filter.CustomerID != nil && *filter.CustomerID != "" {
		b.addFilter("customer_id", *filter.CustomerID)
	}
	if filter.TranslatorID != nil && *filter.TranslatorID != "" {
		b.addFilter("translator_id", *filter.TranslatorID)
	}
	if filter.Status != nil && *filter.Status != "" {
		b.addFilter("status", string(*filter.Status))
	}

	limit := clampLimit(filter.Limit)
	b.query += fmt.Sprintf(" ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d", b.argIdx, b.argIdx+1)
	b.args = append(b.args, limit, max(filter.Offset, 0))

	return r.queryJobs(ctx, b.query, b.args)
}

// ListHistory returns a page of a user's finished jobs, newest first, along
// with the total row count for pagination.
func (r *JobRepo) ListHistory(
	ctx context.Context,
	filter model.HistoryFilter,
) ([]*model.Job, int, error) {
	if strings.TrimSpace(filter.UserID) == "" {
		return nil, 0, ErrUserIDRequired
	}

	owner := "customer_id"
	if filter.AsTranslator {
		owner = "translator_id"
	}

	b := &jobFilterQueryBuilder{
		query: fmt.Sprintf(
			`FROM jobs WHERE %s = $1 AND status IN ('completed', 'cancelled', 'not_called')`,
			owner,
		),
		args:   []any{filter.UserID},
		argIdx: 2,
	}
	if filter.Status != nil && *filter.Status != "" {
		b.addFilter("status", string(*filter.Status))
	}
	if filter.From != nil {
		b.addCompare("created_at", ">=", filter.From.UTC())
	}
	if filter.To != nil {
		b.addCompare("created_at", "<", filter.To.UTC())
	}

	countQuery := "SELECT COUNT(*) " + b.query

	limit := clampLimit(filter.Limit)
	listQuery := fmt.Sprintf(
		"SELECT "+jobColumns+" %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		b.query, b.argIdx, b.argIdx+1,
	)
	listArgs := append(append([]any{}, b.args...), limit, max(filter.Offset, 0))

	var (
		jobs  []*model.Job
		total int
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
			return fmt.Errorf("count history: %w", err)
		}
		rows, err := conn.Query(ctx, listQuery, listArgs...)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		jobs, err = collectJobs(rows)
		if err != nil {
			return fmt.Errorf("collect history: %w", err)
		}
		return nil
	}); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ListOpen returns every job currently open for bidding, oldest first.
func (r *JobRepo) ListOpen(ctx context.Context) ([]*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
      WHERE status = 'pending'
      ORDER BY created_at ASC, id ASC`
	return r.queryJobs(ctx, query, nil)
}

// ListAll returns jobs across all users, newest first. Admin surface.
func (r *JobRepo) ListAll(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	b := &jobFilterQueryBuilder{
		query:  `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`,
		argIdx: 1,
	}

	if filter.Status != nil && *filter.Status != "" {
		b.addFilter("status", string(*filter.Status))
	}
	if filter.CustomerID != nil && *filter.CustomerID != "" {
		b.addFilter("customer_id", *filter.CustomerID)
	}
	if filter.TranslatorID != nil && *filter.TranslatorID != "" {
		b.addFilter("translator_id", *filter.TranslatorID)
	}
	if filter.CreatedFrom != nil {
		b.addCompare("created_at", ">=", filter.CreatedFrom.UTC())
	}
	if filter.CreatedTo != nil {
		b.addCompare("created_at", "<", filter.CreatedTo.UTC())
	}

	limit := clampLimit(filter.Limit)
	b.query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", b.argIdx, b.argIdx+1)
	b.args = append(b.args, limit, max(filter.Offset, 0))

	return r.queryJobs(ctx, b.query, b.args)
}

func (r *JobRepo) queryJobs(ctx context.Context, query string, args []any) ([]*model.Job, error) {
	var jobs []*model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query jobs: %w", err)
		}
		collected, cerr := collectJobs(rows)
		if cerr != nil {
			return fmt.Errorf("collect jobs: %w", cerr)
		}
		jobs = collected
		return nil
	}); err != nil {
		return nil, err
	}
	return jobs, nil
}
