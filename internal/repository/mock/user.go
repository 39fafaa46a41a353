package mock

import (
	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
)

type userStore struct {
	store *Store
}

// Create appends the user and checkpoints the store. Email uniqueness is
// the caller's responsibility (check ByEmail first), matching the contract
// in the repository package.
func (u *userStore) Create(user *model.User) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	u.store.data.Users = append(u.store.data.Users, cloneUser(user))
	return u.store.save()
}

func (u *userStore) ByID(id string) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for _, user := range u.store.data.Users {
		if user.ID == id {
			return cloneUser(user), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// ByEmail returns the first exact (case-sensitive) match.
func (u *userStore) ByEmail(email string) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for _, user := range u.store.data.Users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// cloneUser copies a record so callers never hold references into store
// state.
func cloneUser(u *model.User) *model.User {
	c := *u
	if u.Name != nil {
		v := *u.Name
		c.Name = &v
	}
	if u.PasswordHash != nil {
		v := *u.PasswordHash
		c.PasswordHash = &v
	}
	return &c
}
