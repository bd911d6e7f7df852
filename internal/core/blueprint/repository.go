package blueprint

import (
	"context"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

const (
	table = "blueprints"

	// joinProjection attaches the owning composition type to each row.
	joinProjection = "*, composition_types(name, display_name, category)"
)

type Repository struct {
	db store.Executor
}

func NewRepository(db store.Executor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, bp *Blueprint) (*Blueprint, error) {
	row, err := store.ExecuteSingle(ctx, r.db, store.From(table).Insert(store.Row{
		"user_id":             bp.UserID,
		"composition_type_id": bp.CompositionTypeID,
		"name":                bp.Name,
		"params":              map[string]interface{}(bp.Params),
		"is_public":           bp.IsPublic,
	}))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Blueprint, error) {
	row, err := store.ExecuteSingle(ctx, r.db,
		store.From(table).Select(joinProjection).Eq("id", id))
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Blueprint, error) {
	rows, err := r.db.Execute(ctx, store.From(table).
		Select(joinProjection).
		Eq("user_id", userID).
		OrderBy("updated_at", false))
	if err != nil {
		return nil, err
	}
	out := make([]*Blueprint, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, id string, patch store.Row) error {
	_, err := r.db.Execute(ctx, store.From(table).Eq("id", id).Update(patch))
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Execute(ctx, store.From(table).Eq("id", id).Delete())
	return err
}

func fromRow(row store.Row) *Blueprint {
	bp := &Blueprint{
		ID:                row.ID(),
		UserID:            row.String("user_id"),
		CompositionTypeID: row.String("composition_type_id"),
		Name:              row.String("name"),
		CreatedAt:         row.String("created_at"),
		UpdatedAt:         row.String("updated_at"),
	}
	if params, ok := row["params"].(map[string]interface{}); ok {
		bp.Params = registry.ParameterSet(params)
	}
	if pub, ok := row["is_public"].(bool); ok {
		bp.IsPublic = pub
	}
	if joined, ok := row["composition_types"].(map[string]interface{}); ok {
		info := &TypeInfo{}
		info.Name, _ = joined["name"].(string)
		info.DisplayName, _ = joined["display_name"].(string)
		info.Category, _ = joined["category"].(string)
		bp.CompositionType = info
	}
	return bp
}
