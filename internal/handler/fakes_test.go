package handler

import (
	"context"
	"time"

	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/repository"
)

// In-memory stores backing the services under test. Same sentinel errors as
// the real repositories.

type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	for id, u := range f.users {
		if u.Email == user.Email && id != user.ID {
			return repository.ErrDuplicateEmail
		}
	}
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCatwayStore struct {
	catways map[int64]*model.Catway
	nextID  int64
}

func newFakeCatwayStore() *fakeCatwayStore {
	return &fakeCatwayStore{catways: make(map[int64]*model.Catway), nextID: 1}
}

func (f *fakeCatwayStore) Create(_ context.Context, catway *model.Catway) error {
	if _, ok := f.catways[catway.Number]; ok {
		return repository.ErrDuplicateCatwayNumber
	}
	catway.ID = f.nextID
	f.nextID++
	cp := *catway
	f.catways[catway.Number] = &cp
	return nil
}

func (f *fakeCatwayStore) GetByNumber(_ context.Context, number int64) (*model.Catway, error) {
	c, ok := f.catways[number]
	if !ok {
		return nil, repository.ErrCatwayNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCatwayStore) List(_ context.Context) ([]model.Catway, error) {
	var out []model.Catway
	for _, c := range f.catways {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCatwayStore) UpdateState(_ context.Context, number int64, state string) error {
	c, ok := f.catways[number]
	if !ok {
		return repository.ErrCatwayNotFound
	}
	c.State = state
	return nil
}

func (f *fakeCatwayStore) Delete(_ context.Context, number int64) error {
	if _, ok := f.catways[number]; !ok {
		return repository.ErrCatwayNotFound
	}
	delete(f.catways, number)
	return nil
}

type fakeReservationStore struct {
	reservations map[int64]*model.Reservation
	nextID       int64
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: make(map[int64]*model.Reservation), nextID: 1}
}

func (f *fakeReservationStore) Create(_ context.Context, res *model.Reservation) error {
	res.ID = f.nextID
	f.nextID++
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeReservationStore) GetByID(_ context.Context, id int64) (*model.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationStore) ListByCatway(_ context.Context, catwayNumber int64) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range f.reservations {
		if r.CatwayNumber == catwayNumber {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) ListAll(_ context.Context) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range f.reservations {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReservationStore) Update(_ context.Context, res *model.Reservation) error {
	if _, ok := f.reservations[res.ID]; !ok {
		return repository.ErrReservationNotFound
	}
	cp := *res
	f.reservations[res.ID] = &cp
	return nil
}

func (f *fakeReservationStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return repository.ErrReservationNotFound
	}
	delete(f.reservations, id)
	return nil
}
