// Package devseed populates a development database with translators and
// sample jobs so the API has data to serve out of the box.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dtapi/booking-go/internal/data"
	"github.com/dtapi/booking-go/internal/domain/model"
)

type seedTranslator struct {
	Name         string
	Email        string
	Phone        string
	DeviceToken  string
	LanguageFrom string
	LanguageTo   string
	Region       string
	Active       bool
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is idempotent: existing translators (by email) are left untouched
// and jobs are only created when the jobs table is empty.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	failures := seedTranslators(ctx, db, logger)

	if err := seedJobs(ctx, db, logger); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedTranslators(ctx context.Context, db *sql.DB, logger *slog.Logger) int {
	translators := []seedTranslator{
		{
			Name:         "Astrid Lund",
			Email:        "astrid@example.com",
			Phone:        "+46700000001",
			DeviceToken:  "dev-token-astrid",
			LanguageFrom: "sv",
			LanguageTo:   "en",
			Region:       "stockholm",
			Active:       true,
		},
		{
			Name:         "Omar Haddad",
			Email:        "omar@example.com",
			Phone:        "+46700000002",
			DeviceToken:  "dev-token-omar",
			LanguageFrom: "ar",
			LanguageTo:   "sv",
			Region:       "",
			Active:       true,
		},
		{
			Name:         "Elena Petrova",
			Email:        "elena@example.com",
			Phone:        "+46700000003",
			LanguageFrom: "ru",
			LanguageTo:   "sv",
			Region:       "gothenburg",
			Active:       true,
		},
		{
			Name:         "Retired Account",
			Email:        "retired@example.com",
			LanguageFrom: "sv",
			LanguageTo:   "en",
			Active:       false,
		},
	}

	failures := 0
	for _, tr := range translators {
		created, err := insertTranslator(ctx, db, tr)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to seed translator", "email", tr.Email, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			msg := "translator already exists"
			if created {
				msg = "translator seeded"
			}
			logger.InfoContext(ctx, msg, "email", tr.Email)
		}
	}
	return failures
}

func insertTranslator(ctx context.Context, db *sql.DB, tr seedTranslator) (bool, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO translators (name, email, phone, device_token, language_from, language_to, region, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO NOTHING`,
		tr.Name, tr.Email, tr.Phone, tr.DeviceToken,
		tr.LanguageFrom, tr.LanguageTo, tr.Region, tr.Active,
	)
	if err != nil {
		return false, fmt.Errorf("insert translator %s: %w", tr.Email, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func seedJobs(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		if logger != nil {
			logger.InfoContext(ctx, "jobs table not empty, skipping job seed", "count", count)
		}
		return nil
	}

	repo := data.NewJobRepo(db, data.RepoConfig{Logger: logger})
	requests := []*model.CreateJobRequest{
		{
			CustomerID:   "dev-customer-1",
			Title:        "Parent-teacher meeting",
			Body:         "Interpretation needed for a school meeting on Tuesday.",
			LanguageFrom: "sv",
			LanguageTo:   "en",
			Region:       "stockholm",
		},
		{
			CustomerID:   "dev-customer-1",
			Title:        "Medical appointment",
			Body:         "Follow-up visit at the health center.",
			LanguageFrom: "ar",
			LanguageTo:   "sv",
		},
		{
			CustomerID:   "dev-customer-2",
			Title:        "Housing office call",
			Body:         "Phone interpretation for a rental contract question.",
			LanguageFrom: "ru",
			LanguageTo:   "sv",
			Region:       "gothenburg",
		},
	}

	for _, req := range requests {
		job, err := repo.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed job %q: %w", req.Title, err)
		}
		if logger != nil {
			logger.InfoContext(ctx, "job seeded", "id", job.ID, "title", job.Title)
		}
	}
	return nil
}
