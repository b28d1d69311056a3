package repository

import (
	"context"
	"sync"

	"github.com/AlibekovAA/notes-api/internal/user/domain"
)

type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[domain.ID]domain.User
	byUsername map[string]domain.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[domain.ID]domain.User),
		byUsername: make(map[string]domain.ID),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return ErrUsernameAlreadyExists
	}
	r.byID[user.ID] = user
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}
