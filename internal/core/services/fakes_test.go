package services

import (
	"context"
	"sync"

	"github.com/ken122189/backend-P7/internal/core/domain"
)

// fakeUserRepo is an in-memory credential store double. beforeRotate, when
// set, runs between the read and the conditional write so tests can stage a
// concurrent rotation.
type fakeUserRepo struct {
	mu           sync.Mutex
	seq          int64
	users        map[int64]*domain.User
	beforeRotate func()
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return cloneUser(user), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByRefreshToken(_ context.Context, tokenHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.RefreshToken != nil && *user.RefreshToken == tokenHash {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}
	return users, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = r.seq
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.users[user.ID]; ok {
		stored.Username = user.Username
		stored.PasswordHash = user.PasswordHash
		stored.Role = user.Role
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) SetRefreshToken(_ context.Context, userID int64, tokenHash *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.RefreshToken = cloneHash(tokenHash)
	}
	return nil
}

func (r *fakeUserRepo) RotateRefreshToken(_ context.Context, userID int64, oldHash, newHash string) (bool, error) {
	if r.beforeRotate != nil {
		r.beforeRotate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok || user.RefreshToken == nil || *user.RefreshToken != oldHash {
		return false, nil
	}
	user.RefreshToken = &newHash
	return true, nil
}

func (r *fakeUserRepo) storedRefreshToken(userID int64) *string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		return cloneHash(user.RefreshToken)
	}
	return nil
}

func cloneUser(user *domain.User) *domain.User {
	clone := *user
	clone.RefreshToken = cloneHash(user.RefreshToken)
	return &clone
}

func cloneHash(hash *string) *string {
	if hash == nil {
		return nil
	}
	value := *hash
	return &value
}

type fakePositionRepo struct {
	mu        sync.Mutex
	seq       int64
	positions map[int64]*domain.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{positions: make(map[int64]*domain.Position)}
}

func (r *fakePositionRepo) Save(_ context.Context, position *domain.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	position.ID = r.seq
	stored := *position
	r.positions[position.ID] = &stored
	return nil
}

func (r *fakePositionRepo) GetByID(_ context.Context, id int64) (*domain.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if position, ok := r.positions[id]; ok {
		clone := *position
		return &clone, nil
	}
	return nil, nil
}

func (r *fakePositionRepo) GetAll(_ context.Context) ([]*domain.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	positions := make([]*domain.Position, 0, len(r.positions))
	for _, position := range r.positions {
		clone := *position
		positions = append(positions, &clone)
	}
	return positions, nil
}

func (r *fakePositionRepo) Update(_ context.Context, id int64, code, name *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if position, ok := r.positions[id]; ok {
		if code != nil {
			position.Code = *code
		}
		if name != nil {
			position.Name = *name
		}
	}
	return nil
}

func (r *fakePositionRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[id]; !ok {
		return false, nil
	}
	delete(r.positions, id)
	return true, nil
}
