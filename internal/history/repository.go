// Package history stores the translations served by the backend.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"translate-bridge/internal/translation_engine"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Record is one served translation.
type Record struct {
	bun.BaseModel `bun:"table:translations,alias:t"`

	ID         uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Input      string    `bun:"input,notnull" json:"input"`
	Translated string    `bun:"translated,notnull" json:"translated"`
	SourceLang string    `bun:"source_lang,notnull" json:"source_lang"`
	TargetLang string    `bun:"target_lang,notnull" json:"target_lang"`
	Method     string    `bun:"method,notnull" json:"method"`
	DurationMS int64     `bun:"duration_ms,notnull,default:0" json:"duration_ms"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// NewRecord converts an engine result into a history record.
func NewRecord(result *translation_engine.Result) *Record {
	return &Record{
		ID:         uuid.New(),
		Input:      result.Input,
		Translated: result.Translated,
		SourceLang: result.SourceLanguage.Code,
		TargetLang: result.TargetLanguage.Code,
		Method:     string(result.Method),
		DurationMS: result.Duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Repository persists records through bun.
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the translations table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.createTableQuery().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create translations table: %w", err)
	}
	return nil
}

// Record implements translation_engine.Recorder.
func (r *Repository) Record(ctx context.Context, result *translation_engine.Result) error {
	rec := NewRecord(result)
	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert translation: %w", err)
	}
	return nil
}

// Recent returns the newest records first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Record, error) {
	limit = ClampLimit(limit)

	records := make([]Record, 0, limit)
	if err := r.recentQuery(&records, limit).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to select translations: %w", err)
	}
	return records, nil
}

func (r *Repository) createTableQuery() *bun.CreateTableQuery {
	return r.db.NewCreateTable().
		Model((*Record)(nil)).
		IfNotExists()
}

func (r *Repository) recentQuery(records *[]Record, limit int) *bun.SelectQuery {
	return r.db.NewSelect().
		Model(records).
		Order("created_at DESC").
		Limit(limit)
}

// ClampLimit maps a requested page size into [1, MaxLimit]; zero or less means DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
