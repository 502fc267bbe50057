package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/portrussell/marina-go/internal/model"
)

var (
	ErrCatwayNotFound        = errors.New("catway not found")
	ErrDuplicateCatwayNumber = errors.New("catway number already exists")
)

// CatwayRepository handles catway persistence operations.
type CatwayRepository struct {
	db *sql.DB
}

// NewCatwayRepository creates a new CatwayRepository.
func NewCatwayRepository(db *sql.DB) *CatwayRepository {
	return &CatwayRepository{db: db}
}

const catwayColumns = `id, catway_number, catway_type, catway_state, created_at, updated_at`

// Create inserts a new catway. The unique key on catway_number arbitrates
// concurrent creates; the loser gets ErrDuplicateCatwayNumber.
func (r *CatwayRepository) Create(ctx context.Context, catway *model.Catway) error {
	query := `INSERT INTO catways (catway_number, catway_type, catway_state) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, catway.Number, catway.Type, catway.State)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCatwayNumber
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	catway.ID = id
	return nil
}

// GetByNumber retrieves a catway by its berth number.
func (r *CatwayRepository) GetByNumber(ctx context.Context, number int64) (*model.Catway, error) {
	query := `SELECT ` + catwayColumns + ` FROM catways WHERE catway_number = ?`

	catway := &model.Catway{}
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&catway.ID, &catway.Number, &catway.Type, &catway.State, &catway.CreatedAt, &catway.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatwayNotFound
		}
		return nil, err
	}

	return catway, nil
}

// List retrieves all catways ordered by berth number.
func (r *CatwayRepository) List(ctx context.Context) ([]model.Catway, error) {
	query := `SELECT ` + catwayColumns + ` FROM catways ORDER BY catway_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catways []model.Catway
	for rows.Next() {
		var c model.Catway
		if err := rows.Scan(&c.ID, &c.Number, &c.Type, &c.State, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		catways = append(catways, c)
	}

	return catways, rows.Err()
}

// UpdateState changes the state of a catway. Number and type stay fixed.
func (r *CatwayRepository) UpdateState(ctx context.Context, number int64, state string) error {
	query := `UPDATE catways SET catway_state = ? WHERE catway_number = ?`
	_, err := r.db.ExecContext(ctx, query, state, number)
	return err
}

// Delete removes a catway by its berth number.
func (r *CatwayRepository) Delete(ctx context.Context, number int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM catways WHERE catway_number = ?`, number)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCatwayNotFound
	}
	return nil
}
