package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_conversion_store.go -package=mocks meetingdocs/internal/storage ConversionStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// ConversionStore defines the interface for conversion record storage.
type ConversionStore interface {
	// Insert stores a new conversion record. Generates an ID when empty.
	Insert(ctx context.Context, rec *ConversionRecord) error
	// GetByID gets a conversion record by ID.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*ConversionRecord, error)
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]ConversionRecord, error)
}

// ConversionRepo provides methods for conversion record operations.
// It implements the ConversionStore interface.
type ConversionRepo struct {
	db *sql.DB
}

// NewConversionRepo creates a new ConversionRepo.
func NewConversionRepo(db *sql.DB) *ConversionRepo {
	return &ConversionRepo{db: db}
}

// Insert stores a new conversion record. Generates an ID when empty.
func (r *ConversionRepo) Insert(ctx context.Context, rec *ConversionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversions (id, title, document_id, source_hash, block_count)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.DocumentID, rec.SourceHash, rec.BlockCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}

	return nil
}

// GetByID gets a conversion record by ID.
// Returns nil and ErrNotFound if not found.
func (r *ConversionRepo) GetByID(ctx context.Context, id string) (*ConversionRecord, error) {
	var rec ConversionRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, document_id, source_hash, block_count, created_at FROM conversions WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.Title, &rec.DocumentID, &rec.SourceHash, &rec.BlockCount, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion: %w", err)
	}

	rec.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// ListRecent returns up to limit records, newest first.
func (r *ConversionRepo) ListRecent(ctx context.Context, limit int) ([]ConversionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, document_id, source_hash, block_count, created_at FROM conversions ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []ConversionRecord
	for rows.Next() {
		var rec ConversionRecord
		var createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.DocumentID, &rec.SourceHash, &rec.BlockCount, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		rec.CreatedAt, err = parseTimestamp(createdAtStr)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversions: %w", err)
	}

	return records, nil
}

// parseTimestamp parses a SQLite DATETIME string.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// Try alternative format (SQLite might use different format)
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return t, nil
}
