package history

import "github.com/PatriceWisniewsky/MotionCut/internal/registry"

type Status string

const (
	StatusRendering Status = "rendering"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRendering, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Entry is one video-render record. Entries start in the rendering state
// and transition exactly once to completed or failed.
type Entry struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	BlueprintID     string                `json:"blueprint_id,omitempty"`
	CompositionType string                `json:"composition_type"`
	Params          registry.ParameterSet `json:"params"`
	Status          Status                `json:"status"`
	OutputURL       string                `json:"output_url,omitempty"`
	FileSizeBytes   int64                 `json:"file_size_bytes,omitempty"`
	DurationMs      int64                 `json:"duration_ms,omitempty"`
	CreatedAt       string                `json:"created_at"`
}

type CreateEntryRequest struct {
	CompositionType string                `json:"composition_type" binding:"required"`
	Params          registry.ParameterSet `json:"params" binding:"required"`
	BlueprintID     string                `json:"blueprint_id"`
}

type UpdateStatusRequest struct {
	Status        Status `json:"status" binding:"required"`
	OutputURL     string `json:"output_url"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	DurationMs    int64  `json:"duration_ms"`
}

type ListEntriesResponse struct {
	Entries []*Entry `json:"entries"`
	Total   int      `json:"total"`
}
