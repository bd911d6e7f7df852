package composition

import (
	"context"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

const table = "composition_types"

type Repository struct {
	db store.Executor
}

func NewRepository(db store.Executor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByName(ctx context.Context, name string) (*CompositionType, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Eq("name", name))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func (r *Repository) List(ctx context.Context) ([]*CompositionType, error) {
	rows, err := r.db.Execute(ctx, store.From(table).OrderBy("name", true))
	if err != nil {
		return nil, err
	}
	out := make([]*CompositionType, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, ct *CompositionType) (*CompositionType, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Insert(store.Row{
		"name":           ct.Name,
		"display_name":   ct.DisplayName,
		"description":    ct.Description,
		"category":       string(ct.Category),
		"default_props":  map[string]interface{}(ct.DefaultProps),
		"schema_version": ct.SchemaVersion,
	}))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func fromRow(row store.Row) *CompositionType {
	ct := &CompositionType{
		ID:          row.ID(),
		Name:        row.String("name"),
		DisplayName: row.String("display_name"),
		Description: row.String("description"),
		Category:    registry.Category(row.String("category")),
		CreatedAt:   row.String("created_at"),
	}
	if props, ok := row["default_props"].(map[string]interface{}); ok {
		ct.DefaultProps = registry.ParameterSet(props)
	}
	if v, ok := row["schema_version"].(float64); ok {
		ct.SchemaVersion = int(v)
	}
	return ct
}
