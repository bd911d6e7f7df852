package history

import (
	"context"
	"errors"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

var (
	ErrNotFound         = errors.New("history entry not found")
	ErrInvalidStatus    = errors.New("invalid render status")
	ErrTemplateNotFound = errors.New("composition template not found")
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create records a render in the rendering state.
func (s *Service) Create(ctx context.Context, userID string, req *CreateEntryRequest) (*Entry, error) {
	if _, err := registry.Lookup(req.CompositionType); err != nil {
		return nil, ErrTemplateNotFound
	}

	return s.repo.Create(ctx, &Entry{
		UserID:          userID,
		BlueprintID:     req.BlueprintID,
		CompositionType: req.CompositionType,
		Params:          req.Params,
		Status:          StatusRendering,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *Service) List(ctx context.Context, userID string) (*ListEntriesResponse, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*Entry{}
	}
	return &ListEntriesResponse{Entries: entries, Total: len(entries)}, nil
}

// UpdateStatus moves an entry to completed or failed and records the
// render artifacts.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*Entry, error) {
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	patch := store.Row{"status": string(req.Status)}
	if req.OutputURL != "" {
		patch["output_url"] = req.OutputURL
	}
	if req.FileSizeBytes > 0 {
		patch["file_size_bytes"] = req.FileSizeBytes
	}
	if req.DurationMs > 0 {
		patch["duration_ms"] = req.DurationMs
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}
