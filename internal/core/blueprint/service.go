package blueprint

import (
	"context"
	"errors"

	"github.com/PatriceWisniewsky/MotionCut/internal/core/composition"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/validation"
	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
)

var (
	ErrNotFound         = errors.New("blueprint not found")
	ErrTemplateNotFound = errors.New("composition template not found")
)

// duplicateSuffix is appended to the name of a duplicated blueprint.
const duplicateSuffix = " (Kopie)"

type Service struct {
	repo           *Repository
	compositionSvc *composition.Service
	validator      *validation.Validator
}

func NewService(repo *Repository, compositionSvc *composition.Service, validator *validation.Validator) *Service {
	return &Service{
		repo:           repo,
		compositionSvc: compositionSvc,
		validator:      validator,
	}
}

// Create validates the parameter set against the template schema before
// anything is persisted, resolves (or seeds) the composition type row, and
// inserts the blueprint.
func (s *Service) Create(ctx context.Context, userID string, req *CreateBlueprintRequest) (*Blueprint, error) {
	tpl, err := registry.Lookup(req.Template)
	if err != nil {
		return nil, ErrTemplateNotFound
	}

	if err := s.validator.ValidateParams(req.Params, tpl); err != nil {
		return nil, err
	}

	ct, err := s.compositionSvc.GetOrCreateByName(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Blueprint{
		UserID:            userID,
		CompositionTypeID: ct.ID,
		Name:              req.Name,
		Params:            req.Params,
		IsPublic:          req.IsPublic,
	})
}

// Get returns a blueprint with its joined composition type. A blueprint
// whose type is missing from the registry is a referential gap: the caller
// gets ErrTemplateNotFound and aborts instead of rendering a partial view.
func (s *Service) Get(ctx context.Context, id string) (*Blueprint, error) {
	bp, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.checkTemplate(bp); err != nil {
		return nil, err
	}
	return bp, nil
}

func (s *Service) List(ctx context.Context, userID string) (*ListBlueprintsResponse, error) {
	blueprints, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if blueprints == nil {
		blueprints = []*Blueprint{}
	}
	return &ListBlueprintsResponse{Blueprints: blueprints, Total: len(blueprints)}, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateBlueprintRequest) (*Blueprint, error) {
	bp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := store.Row{}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Params != nil {
		tpl, err := registry.Lookup(bp.CompositionType.Name)
		if err != nil {
			return nil, ErrTemplateNotFound
		}
		if err := s.validator.ValidateParams(req.Params, tpl); err != nil {
			return nil, err
		}
		patch["params"] = map[string]interface{}(req.Params)
	}
	if req.IsPublic != nil {
		patch["is_public"] = *req.IsPublic
	}

	if len(patch) > 0 {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Duplicate copies a blueprint's parameters and metadata under a new
// identity. The copy is named "<name> (Kopie)" and is never public.
func (s *Service) Duplicate(ctx context.Context, id string) (*Blueprint, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	copyBp, err := s.repo.Create(ctx, &Blueprint{
		UserID:            src.UserID,
		CompositionTypeID: src.CompositionTypeID,
		Name:              src.Name + duplicateSuffix,
		Params:            src.Params.Clone(),
		IsPublic:          false,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, copyBp.ID)
}

func (s *Service) checkTemplate(bp *Blueprint) error {
	if bp.CompositionType == nil {
		return ErrTemplateNotFound
	}
	if _, err := registry.Lookup(bp.CompositionType.Name); err != nil {
		return ErrTemplateNotFound
	}
	return nil
}
