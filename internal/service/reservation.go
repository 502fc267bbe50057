package service

import (
	"context"
	"errors"
	"time"

	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/repository"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationMismatch means the reservation exists but belongs to a
	// different catway than the one named in the path. Deliberately distinct
	// from ErrReservationNotFound.
	ErrReservationMismatch = errors.New("reservation does not belong to this catway")
)

// ReservationService handles reservation business logic, including the
// parent/child consistency rule against catways.
type ReservationService struct {
	catways      CatwayStore
	reservations ReservationStore
}

// NewReservationService creates a new ReservationService.
func NewReservationService(catways CatwayStore, reservations ReservationStore) *ReservationService {
	return &ReservationService{catways: catways, reservations: reservations}
}

// Create books a reservation on the catway named in the path.
func (s *ReservationService) Create(ctx context.Context, catwayNumber int64, req model.CreateReservationRequest) (model.ReservationResponse, error) {
	if err := s.requireCatway(ctx, catwayNumber); err != nil {
		return model.ReservationResponse{}, err
	}

	verr := &model.ValidationError{}
	if req.ClientName == "" {
		verr.Add("clientName", "is required")
	}
	if req.StartDate.IsZero() {
		verr.Add("startDate", "is required")
	}
	if req.EndDate.IsZero() {
		verr.Add("endDate", "is required")
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() {
		validateDateOrder(verr, req.StartDate.Time, req.EndDate.Time)
	}
	if !verr.Empty() {
		return model.ReservationResponse{}, verr
	}

	res := &model.Reservation{
		CatwayNumber: catwayNumber,
		ClientName:   req.ClientName,
		BoatName:     req.BoatName,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		return model.ReservationResponse{}, err
	}

	return reservationToResponse(res), nil
}

// List returns the reservations of one catway.
func (s *ReservationService) List(ctx context.Context, catwayNumber int64) ([]model.ReservationResponse, error) {
	if err := s.requireCatway(ctx, catwayNumber); err != nil {
		return nil, err
	}

	reservations, err := s.reservations.ListByCatway(ctx, catwayNumber)
	if err != nil {
		return nil, err
	}
	return reservationsToResponse(reservations), nil
}

// ListAll returns every reservation across all catways.
func (s *ReservationService) ListAll(ctx context.Context) ([]model.ReservationResponse, error) {
	reservations, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return reservationsToResponse(reservations), nil
}

// Get returns one reservation, enforcing the parent/child rule.
func (s *ReservationService) Get(ctx context.Context, catwayNumber, id int64) (model.ReservationResponse, error) {
	res, err := s.resolve(ctx, catwayNumber, id)
	if err != nil {
		return model.ReservationResponse{}, err
	}
	return reservationToResponse(res), nil
}

// Update changes a reservation's details. When either date bound changes,
// the resulting final pair is validated, not just the submitted delta. A
// reservation cannot be moved to another catway.
func (s *ReservationService) Update(ctx context.Context, catwayNumber, id int64, req model.UpdateReservationRequest) (model.ReservationResponse, error) {
	res, err := s.resolve(ctx, catwayNumber, id)
	if err != nil {
		return model.ReservationResponse{}, err
	}

	if req.ClientName != nil {
		res.ClientName = *req.ClientName
	}
	if req.BoatName != nil {
		res.BoatName = *req.BoatName
	}

	if req.StartDate != nil || req.EndDate != nil {
		start, end := res.StartDate, res.EndDate
		if req.StartDate != nil {
			start = req.StartDate.Time
		}
		if req.EndDate != nil {
			end = req.EndDate.Time
		}

		verr := &model.ValidationError{}
		validateDateOrder(verr, start, end)
		if !verr.Empty() {
			return model.ReservationResponse{}, verr
		}

		res.StartDate, res.EndDate = start, end
	}

	if res.ClientName == "" {
		verr := &model.ValidationError{}
		return model.ReservationResponse{}, verr.Add("clientName", "is required")
	}

	if err := s.reservations.Update(ctx, res); err != nil {
		return model.ReservationResponse{}, err
	}

	return reservationToResponse(res), nil
}

// Delete removes a reservation, enforcing the parent/child rule first.
func (s *ReservationService) Delete(ctx context.Context, catwayNumber, id int64) error {
	if _, err := s.resolve(ctx, catwayNumber, id); err != nil {
		return err
	}

	err := s.reservations.Delete(ctx, id)
	if errors.Is(err, repository.ErrReservationNotFound) {
		return ErrReservationNotFound
	}
	return err
}

// resolve looks up the path's catway and the reservation, then checks that
// the reservation actually hangs off that catway. Order matters: a missing
// catway and a missing reservation are separate 404s, while a mismatch is
// its own conflict error.
func (s *ReservationService) resolve(ctx context.Context, catwayNumber, id int64) (*model.Reservation, error) {
	if err := s.requireCatway(ctx, catwayNumber); err != nil {
		return nil, err
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if res.CatwayNumber != catwayNumber {
		return nil, ErrReservationMismatch
	}

	return res, nil
}

func (s *ReservationService) requireCatway(ctx context.Context, number int64) error {
	_, err := s.catways.GetByNumber(ctx, number)
	if errors.Is(err, repository.ErrCatwayNotFound) {
		return ErrCatwayNotFound
	}
	return err
}

func validateDateOrder(verr *model.ValidationError, start, end time.Time) {
	if !start.Before(end) {
		verr.Add("startDate", "must be before endDate")
	}
}

func reservationToResponse(r *model.Reservation) model.ReservationResponse {
	return model.ReservationResponse{
		ID:           r.ID,
		CatwayNumber: r.CatwayNumber,
		ClientName:   r.ClientName,
		BoatName:     r.BoatName,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func reservationsToResponse(reservations []model.Reservation) []model.ReservationResponse {
	out := make([]model.ReservationResponse, len(reservations))
	for i := range reservations {
		out[i] = reservationToResponse(&reservations[i])
	}
	return out
}
