package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserRepository backs tests and local runs without postgres.
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byEmail: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
