package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finprobe/internal/domain"
)

// Timestamps are stored as unix nanoseconds; 0 means no expiry.

func (db *DB) Save(ctx context.Context, a domain.Analysis) error {
	flags, err := json.Marshal(a.Flags)
	if err != nil {
		return fmt.Errorf("encode flags: %w", err)
	}
	financials, err := json.Marshal(a.Financials)
	if err != nil {
		return fmt.Errorf("encode financials: %w", err)
	}
	_, err = db.SQL.ExecContext(ctx, `
		INSERT INTO analyses (session_id, id, company, flags, financials, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id) DO UPDATE SET
			id = excluded.id,
			company = excluded.company,
			flags = excluded.flags,
			financials = excluded.financials,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at
	`, a.SessionID, a.ID, a.Company, string(flags), string(financials), a.CreatedAt.UnixNano(), unixNano(a.ExpiresAt))
	return err
}

func (db *DB) Latest(ctx context.Context, sessionID string) (domain.Analysis, bool, error) {
	a := domain.Analysis{SessionID: sessionID}
	var flags, financials string
	var created, expires int64
	err := db.SQL.QueryRowContext(ctx, `
		SELECT id, company, flags, financials, created_at, expires_at
		FROM analyses
		WHERE session_id = ?
	`, sessionID).Scan(&a.ID, &a.Company, &flags, &financials, &created, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Analysis{}, false, nil
	}
	if err != nil {
		return domain.Analysis{}, false, err
	}
	if err := json.Unmarshal([]byte(flags), &a.Flags); err != nil {
		return domain.Analysis{}, false, fmt.Errorf("decode flags: %w", err)
	}
	if err := json.Unmarshal([]byte(financials), &a.Financials); err != nil {
		return domain.Analysis{}, false, fmt.Errorf("decode financials: %w", err)
	}
	a.CreatedAt = time.Unix(0, created).UTC()
	if expires != 0 {
		a.ExpiresAt = time.Unix(0, expires).UTC()
	}
	return a, true, nil
}

func (db *DB) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := db.SQL.ExecContext(ctx, `DELETE FROM analyses WHERE expires_at <> 0 AND expires_at <= ?`, now.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}
