package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"finprobe/internal/domain"
)

func (db *DB) Save(ctx context.Context, a domain.Analysis) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO analyses (session_id, id, company, flags, financials, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO UPDATE SET
			id = EXCLUDED.id,
			company = EXCLUDED.company,
			flags = EXCLUDED.flags,
			financials = EXCLUDED.financials,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at
	`, a.SessionID, a.ID, a.Company, a.Flags, a.Financials, a.CreatedAt, nullTime(a.ExpiresAt))
	return err
}

func (db *DB) Latest(ctx context.Context, sessionID string) (domain.Analysis, bool, error) {
	a := domain.Analysis{SessionID: sessionID}
	var expires *time.Time
	err := db.Pool.QueryRow(ctx, `
		SELECT id, company, flags, financials, created_at, expires_at
		FROM analyses
		WHERE session_id = $1
	`, sessionID).Scan(&a.ID, &a.Company, &a.Flags, &a.Financials, &a.CreatedAt, &expires)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Analysis{}, false, nil
	}
	if err != nil {
		return domain.Analysis{}, false, err
	}
	if expires != nil {
		a.ExpiresAt = *expires
	}
	return a, true, nil
}

func (db *DB) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM analyses WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
