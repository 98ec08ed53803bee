package data

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/dtapi/booking-go/internal/data/pgxutil"
	"github.com/dtapi/booking-go/internal/domain/model"
)

const translatorColumns = `
  id,
  name,
  email,
  phone,
  device_token,
  language_from,
  language_to,
  region,
  active,
  created_at
`

// TranslatorRepo provides database operations for translators.
type TranslatorRepo struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewTranslatorRepo creates a new TranslatorRepo instance.
func NewTranslatorRepo(db *sql.DB, logger *slog.Logger) *TranslatorRepo {
	return &TranslatorRepo{DB: db, logger: logger}
}

// GetByID fetches a translator by id. Returns pgx.ErrNoRows when absent.
func (r *TranslatorRepo) GetByID(ctx context.Context, id string) (*model.Translator, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrTranslatorIDRequired
	}

	query := `SELECT ` + translatorColumns + ` FROM translators WHERE id = $1`

	var translator *model.Translator
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, id)
		if qerr != nil {
			return fmt.Errorf("query translator: %w", qerr)
		}
		collected, cerr := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Translator])
		if cerr != nil {
			return cerr
		}
		translator = collected
		return nil
	}); err != nil {
		return nil, err
	}

	return translator, nil
}

// ListActive returns all translators currently available for work.
func (r *TranslatorRepo) ListActive(ctx context.Context) ([]*model.Translator, error) {
	query := `SELECT ` + translatorColumns + ` FROM translators
      WHERE active ORDER BY created_at ASC, id ASC`

	var translators []*model.Translator
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query)
		if qerr != nil {
			return fmt.Errorf("query translators: %w", qerr)
		}
		collected, cerr := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Translator])
		if cerr != nil {
			return fmt.Errorf("collect translators: %w", cerr)
		}
		translators = collected
		return nil
	}); err != nil {
		return nil, err
	}

	return translators, nil
}

// ContactsByIDs returns delivery contact details for the given translators.
// Missing ids are silently absent from the result.
func (r *TranslatorRepo) ContactsByIDs(ctx context.Context, ids []string) ([]*model.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
      SELECT id AS translator_id, device_token, phone, email
      FROM translators
      WHERE id = ANY($1)`

	var contacts []*model.Contact
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, ids)
		if qerr != nil {
			return fmt.Errorf("query contacts: %w", qerr)
		}
		collected, cerr := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Contact])
		if cerr != nil {
			return fmt.Errorf("collect contacts: %w", cerr)
		}
		contacts = collected
		return nil
	}); err != nil {
		return nil, err
	}

	return contacts, nil
}
