package fakeuserrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simfrisk/SleepJournal/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory UserRepo for tests.
type FakeUserRepo struct {
	users    map[string]*users.User
	emailIds map[string]string // email to user id
	lock     sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:    make(map[string]*users.User),
		emailIds: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Insert(_ context.Context, user *users.User) (*users.User, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	ur.users[stored.ID] = &stored
	ur.emailIds[stored.Email] = stored.ID
	return &stored, nil
}

func (ur *FakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.emailIds[email]
	if !ok {
		return nil, users.ErrNotFound
	}
	u := *ur.users[id]
	return &u, nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	u, ok := ur.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (ur *FakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	u, ok := ur.users[id]
	if !ok {
		return users.ErrNotFound
	}
	u.LastLoginAt = at
	u.UpdatedAt = at
	return nil
}
