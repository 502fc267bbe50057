package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/portrussell/marina-go/internal/model"
)

var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository handles reservation persistence operations.
type ReservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `id, catway_number, client_name, boat_name, start_date, end_date, created_at, updated_at`

// Create inserts a new reservation and sets the generated ID.
func (r *ReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	query := `INSERT INTO reservations (catway_number, client_name, boat_name, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		res.CatwayNumber, res.ClientName, res.BoatName, res.StartDate, res.EndDate)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	res.ID = id
	return nil
}

// GetByID retrieves a reservation by ID, regardless of which catway it
// belongs to; the parent/child check happens in the service layer.
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`

	res := &model.Reservation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.CatwayNumber, &res.ClientName, &res.BoatName,
		&res.StartDate, &res.EndDate, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	return res, nil
}

// ListByCatway retrieves the reservations of one catway, earliest first.
func (r *ReservationRepository) ListByCatway(ctx context.Context, catwayNumber int64) ([]model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE catway_number = ? ORDER BY start_date ASC`
	return r.list(ctx, query, catwayNumber)
}

// ListAll retrieves every reservation, earliest first.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY start_date ASC`
	return r.list(ctx, query)
}

// Update persists the mutable fields of an existing reservation.
func (r *ReservationRepository) Update(ctx context.Context, res *model.Reservation) error {
	query := `UPDATE reservations SET client_name = ?, boat_name = ?, start_date = ?, end_date = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		res.ClientName, res.BoatName, res.StartDate, res.EndDate, res.ID)
	return err
}

// Delete removes a reservation by ID.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.CatwayNumber, &res.ClientName, &res.BoatName,
			&res.StartDate, &res.EndDate, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}
