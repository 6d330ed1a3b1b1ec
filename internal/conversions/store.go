package conversions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tricreta/promptparse/internal/db"
)

// Store records successful conversions in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save inserts a new conversion record. If rec.ID is empty a UUID is
// generated. The creation timestamp is assigned by the database.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	var tokens, cost sql.NullInt64
	if rec.TokensUsed > 0 {
		tokens = sql.NullInt64{Int64: int64(rec.TokensUsed), Valid: true}
	}
	if rec.CostMs > 0 {
		cost = sql.NullInt64{Int64: rec.CostMs, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, kind, input_text, output_json, tokens_used, cost_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Kind,
		rec.InputText,
		rec.OutputJSON,
		tokens,
		cost,
	)
	if err != nil {
		return fmt.Errorf("inserting conversion: %w", err)
	}
	return nil
}

// Recent returns the most recent conversions, newest first. A non-positive
// limit defaults to 5.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, kind, input_text, output_json, tokens_used, cost_ms
		FROM conversions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var tokens, cost sql.NullInt64
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Kind, &rec.InputText, &rec.OutputJSON, &tokens, &cost); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		if tokens.Valid {
			rec.TokensUsed = int(tokens.Int64)
		}
		if cost.Valid {
			rec.CostMs = cost.Int64
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
