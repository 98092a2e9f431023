// Package memory implementa los puertos de persistencia en memoria del proceso.
// Sirve para desarrollo local sin PostgreSQL (STORE_DRIVER=memory) y para tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo guarda usuarios en mapas protegidos por un RWMutex y aplica las mismas
// restricciones de unicidad que los índices de la tabla users.
type UserRepo struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]entity.User
	byUsername map[string]int64
	byEmail    map[string]int64
	now        func() time.Time
}

// NewUserRepo construye un store vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:       make(map[int64]entity.User),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
		now:        time.Now,
	}
}

// Create inserta el usuario; ErrConflict si el username o el email ya están tomados.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[u.Username]; ok {
		return 0, domain.ErrConflict
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return 0, domain.ErrConflict
	}

	r.nextID++
	now := r.now()
	row := *u
	row.ID = r.nextID
	row.CreatedAt = now
	row.UpdatedAt = now

	r.byID[row.ID] = row
	r.byUsername[row.Username] = row.ID
	r.byEmail[row.Email] = row.ID
	return row.ID, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.byUsername[username]; ok {
		u := r.byID[id]
		return &u, nil
	}
	if id, ok := r.byEmail[email]; ok {
		u := r.byID[id]
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) FindDuplicate(ctx context.Context, excludeID int64, username, email *string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.ownerOf(r.byUsername, username); ok && id != excludeID {
		u := r.byID[id]
		return &u, nil
	}
	if id, ok := r.ownerOf(r.byEmail, email); ok && id != excludeID {
		u := r.byID[id]
		return &u, nil
	}
	return nil, nil
}

// List ordena por created_at descendente; a igual timestamp, el ID más alto primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *UserRepo) Update(ctx context.Context, id int64, patch entity.UserPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if owner, taken := r.ownerOf(r.byUsername, patch.Username); taken && owner != id {
		return domain.ErrConflict
	}
	if owner, taken := r.ownerOf(r.byEmail, patch.Email); taken && owner != id {
		return domain.ErrConflict
	}

	delete(r.byUsername, u.Username)
	delete(r.byEmail, u.Email)
	patch.Apply(&u)
	u.UpdatedAt = r.now()
	r.byID[id] = u
	r.byUsername[u.Username] = id
	r.byEmail[u.Email] = id
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byUsername, u.Username)
	delete(r.byEmail, u.Email)
	return nil
}

func (r *UserRepo) ownerOf(index map[string]int64, value *string) (int64, bool) {
	if value == nil || *value == "" {
		return 0, false
	}
	id, ok := index[*value]
	return id, ok
}
