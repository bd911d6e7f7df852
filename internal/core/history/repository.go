package history

import (
	"context"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

const table = "video_history"

type Repository struct {
	db store.Executor
}

func NewRepository(db store.Executor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Insert(store.Row{
		"user_id":          e.UserID,
		"blueprint_id":     e.BlueprintID,
		"composition_type": e.CompositionType,
		"params":           map[string]interface{}(e.Params),
		"status":           string(e.Status),
		"output_url":       e.OutputURL,
		"file_size_bytes":  e.FileSizeBytes,
		"duration_ms":      e.DurationMs,
	}))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Entry, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Eq("id", id))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

// ListByUser returns newest entries first; created_at is ISO 8601 so the
// lexicographic sort is chronological.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Entry, error) {
	rows, err := r.db.Execute(ctx, store.From(table).
		Eq("user_id", userID).
		OrderBy("created_at", false))
	if err != nil {
		return nil, err
	}
	out := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, id string, patch store.Row) error {
	_, err := r.db.Execute(ctx, store.From(table).Eq("id", id).Update(patch))
	return err
}

func fromRow(row store.Row) *Entry {
	e := &Entry{
		ID:              row.ID(),
		UserID:          row.String("user_id"),
		BlueprintID:     row.String("blueprint_id"),
		CompositionType: row.String("composition_type"),
		Status:          Status(row.String("status")),
		OutputURL:       row.String("output_url"),
		CreatedAt:       row.String("created_at"),
	}
	if params, ok := row["params"].(map[string]interface{}); ok {
		e.Params = registry.ParameterSet(params)
	}
	if v, ok := row["file_size_bytes"].(float64); ok {
		e.FileSizeBytes = int64(v)
	}
	if v, ok := row["duration_ms"].(float64); ok {
		e.DurationMs = int64(v)
	}
	return e
}
