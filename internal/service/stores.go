package service

import (
	"context"

	"github.com/portrussell/marina-go/internal/model"
)

// Store interfaces consumed by the services. The repository types satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type CatwayStore interface {
	Create(ctx context.Context, catway *model.Catway) error
	GetByNumber(ctx context.Context, number int64) (*model.Catway, error)
	List(ctx context.Context) ([]model.Catway, error)
	UpdateState(ctx context.Context, number int64, state string) error
	Delete(ctx context.Context, number int64) error
}

type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	ListByCatway(ctx context.Context, catwayNumber int64) ([]model.Reservation, error)
	ListAll(ctx context.Context) ([]model.Reservation, error)
	Update(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id int64) error
}
