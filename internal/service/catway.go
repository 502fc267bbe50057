package service

import (
	"context"
	"errors"

	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/repository"
)

var (
	ErrCatwayNotFound  = errors.New("catway not found")
	ErrDuplicateCatway = errors.New("catway number already in use")
)

// CatwayService handles catway business logic.
type CatwayService struct {
	catways CatwayStore
}

// NewCatwayService creates a new CatwayService.
func NewCatwayService(catways CatwayStore) *CatwayService {
	return &CatwayService{catways: catways}
}

// Create registers a new catway. Number and type are fixed for the life of
// the record.
func (s *CatwayService) Create(ctx context.Context, req model.CreateCatwayRequest) (model.CatwayResponse, error) {
	verr := &model.ValidationError{}
	if req.Number <= 0 {
		verr.Add("catwayNumber", "must be a positive integer")
	}
	if req.Type != model.CatwayLong && req.Type != model.CatwayShort {
		verr.Add("catwayType", "must be \"long\" or \"short\"")
	}
	if req.State == "" {
		verr.Add("catwayState", "is required")
	}
	if !verr.Empty() {
		return model.CatwayResponse{}, verr
	}

	catway := &model.Catway{
		Number: req.Number,
		Type:   req.Type,
		State:  req.State,
	}

	if err := s.catways.Create(ctx, catway); err != nil {
		if errors.Is(err, repository.ErrDuplicateCatwayNumber) {
			return model.CatwayResponse{}, ErrDuplicateCatway
		}
		return model.CatwayResponse{}, err
	}

	return catwayToResponse(catway), nil
}

// List returns all catways.
func (s *CatwayService) List(ctx context.Context) ([]model.CatwayResponse, error) {
	catways, err := s.catways.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.CatwayResponse, len(catways))
	for i := range catways {
		out[i] = catwayToResponse(&catways[i])
	}
	return out, nil
}

// Get returns one catway by its berth number.
func (s *CatwayService) Get(ctx context.Context, number int64) (model.CatwayResponse, error) {
	catway, err := s.catways.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrCatwayNotFound) {
			return model.CatwayResponse{}, ErrCatwayNotFound
		}
		return model.CatwayResponse{}, err
	}
	return catwayToResponse(catway), nil
}

// UpdateState changes the state of a catway; the only mutable field.
func (s *CatwayService) UpdateState(ctx context.Context, number int64, req model.UpdateCatwayRequest) (model.CatwayResponse, error) {
	if req.State == "" {
		verr := &model.ValidationError{}
		return model.CatwayResponse{}, verr.Add("catwayState", "is required")
	}

	catway, err := s.catways.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrCatwayNotFound) {
			return model.CatwayResponse{}, ErrCatwayNotFound
		}
		return model.CatwayResponse{}, err
	}

	if err := s.catways.UpdateState(ctx, number, req.State); err != nil {
		return model.CatwayResponse{}, err
	}

	catway.State = req.State
	return catwayToResponse(catway), nil
}

// Delete removes a catway by its berth number.
func (s *CatwayService) Delete(ctx context.Context, number int64) error {
	err := s.catways.Delete(ctx, number)
	if errors.Is(err, repository.ErrCatwayNotFound) {
		return ErrCatwayNotFound
	}
	return err
}

func catwayToResponse(c *model.Catway) model.CatwayResponse {
	return model.CatwayResponse{
		ID:        c.ID,
		Number:    c.Number,
		Type:      c.Type,
		State:     c.State,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
