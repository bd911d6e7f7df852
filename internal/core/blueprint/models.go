package blueprint

import (
	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

// Blueprint is a saved, named instantiation of a composition with concrete
// parameter values. Timestamps are engine-assigned ISO 8601 strings.
type Blueprint struct {
	ID                string                `json:"id"`
	UserID            string                `json:"user_id"`
	CompositionTypeID string                `json:"composition_type_id"`
	Name              string                `json:"name"`
	Params            registry.ParameterSet `json:"params"`
	IsPublic          bool                  `json:"is_public"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`

	// Joined composition type info, present on reads that request it.
	CompositionType *TypeInfo `json:"composition_types,omitempty"`
}

// TypeInfo is the slice of the composition_types row attached by the join
// projection.
type TypeInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
}

type CreateBlueprintRequest struct {
	Template string                `json:"template" binding:"required"`
	Name     string                `json:"name" binding:"required"`
	Params   registry.ParameterSet `json:"params" binding:"required"`
	IsPublic bool                  `json:"is_public"`
}

type UpdateBlueprintRequest struct {
	Name     string                `json:"name"`
	Params   registry.ParameterSet `json:"params"`
	IsPublic *bool                 `json:"is_public"`
}

type ListBlueprintsResponse struct {
	Blueprints []*Blueprint `json:"blueprints"`
	Total      int          `json:"total"`
}
