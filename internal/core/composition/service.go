package composition

import (
	"context"
	"errors"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

var ErrNotFound = errors.New("composition type not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByName resolves the persisted row for a template name.
func (s *Service) GetByName(ctx context.Context, name string) (*CompositionType, error) {
	ct, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return ct, err
}

// GetOrCreateByName resolves the row for a registry template, creating it
// on first use. Names outside the registry are rejected.
func (s *Service) GetOrCreateByName(ctx context.Context, name string) (*CompositionType, error) {
	ct, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return ct, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	tpl, err := registry.Lookup(name)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.repo.Create(ctx, &CompositionType{
		Name:          tpl.ID,
		DisplayName:   tpl.DisplayName,
		Description:   tpl.Description,
		Category:      tpl.Category,
		DefaultProps:  tpl.Defaults.Clone(),
		SchemaVersion: 1,
	})
}

// EnsureSeeded creates a row for every registry template that is missing.
// The local engine seeds itself; this covers the Postgres path.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	for _, tpl := range registry.All() {
		if _, err := s.GetOrCreateByName(ctx, tpl.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*CompositionType, error) {
	return s.repo.List(ctx)
}
