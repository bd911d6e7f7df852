package composition

import "github.com/PatriceWisniewsky/MotionCut/internal/registry"

// CompositionType is the persisted row backing a registry template. The
// registry stays the source of truth for schemas; the table exists so
// blueprints have a stable foreign key to reference.
type CompositionType struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	DisplayName   string                `json:"display_name"`
	Description   string                `json:"description"`
	Category      registry.Category     `json:"category"`
	DefaultProps  registry.ParameterSet `json:"default_props"`
	SchemaVersion int                   `json:"schema_version"`
	CreatedAt     string                `json:"created_at"`
}
