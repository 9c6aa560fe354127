package http_test

import (
	"context"
	"sync"

	"github.com/tu-usuario/gympro-api/internal/domain"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// Repositorios en memoria para los tests de la capa HTTP. Implementan los
// puertos de internal/domain/repository con el mismo contrato que los adapters
// de Postgres: (nil, nil) cuando el ID no existe y ErrEmailAlreadyExists en
// emails duplicados.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Find(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeAddressRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{items: make(map[string]*entity.Address)}
}

func (r *fakeAddressRepo) Create(_ context.Context, a *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAddressRepo) FindByID(_ context.Context, id string) (*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAddressRepo) Find(_ context.Context) ([]*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Address, 0, len(r.items))
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAddressRepo) Update(_ context.Context, a *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeExerciseRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{items: make(map[string]*entity.Exercise)}
}

func (r *fakeExerciseRepo) Create(_ context.Context, e *entity.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExerciseRepo) FindByID(_ context.Context, id string) (*entity.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExerciseRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Exercise, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.items[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) Find(_ context.Context) ([]*entity.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Exercise, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, e *entity.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeDescriptionRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Description
}

func newFakeDescriptionRepo() *fakeDescriptionRepo {
	return &fakeDescriptionRepo{items: make(map[string]*entity.Description)}
}

func (r *fakeDescriptionRepo) Create(_ context.Context, d *entity.Description) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDescriptionRepo) FindByID(_ context.Context, id string) (*entity.Description, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDescriptionRepo) Find(_ context.Context) ([]*entity.Description, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Description, 0, len(r.items))
	for _, d := range r.items {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDescriptionRepo) Update(_ context.Context, d *entity.Description) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDescriptionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeTrainingRoomRepo struct {
	mu    sync.Mutex
	items map[string]*entity.TrainingRoom
}

func newFakeTrainingRoomRepo() *fakeTrainingRoomRepo {
	return &fakeTrainingRoomRepo{items: make(map[string]*entity.TrainingRoom)}
}

func (r *fakeTrainingRoomRepo) Create(_ context.Context, room *entity.TrainingRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *room
	r.items[room.ID] = &cp
	return nil
}

func (r *fakeTrainingRoomRepo) FindByID(_ context.Context, id string) (*entity.TrainingRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r *fakeTrainingRoomRepo) Find(_ context.Context) ([]*entity.TrainingRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.TrainingRoom, 0, len(r.items))
	for _, room := range r.items {
		cp := *room
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTrainingRoomRepo) Update(_ context.Context, room *entity.TrainingRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *room
	r.items[room.ID] = &cp
	return nil
}

func (r *fakeTrainingRoomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
