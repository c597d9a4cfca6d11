package fakesettingsrepo

import (
	"context"
	"sync"
	"time"

	"github.com/simfrisk/SleepJournal/settings"
)

var _ settings.Repo = (*FakeSettingsRepo)(nil)

// FakeSettingsRepo is an in-memory settings.Repo for tests.
type FakeSettingsRepo struct {
	byUser map[string]*settings.Settings
	lock   sync.RWMutex
}

func NewFakeSettingsRepo() *FakeSettingsRepo {
	return &FakeSettingsRepo{byUser: make(map[string]*settings.Settings)}
}

func (sr *FakeSettingsRepo) Get(_ context.Context, userID string) (*settings.Settings, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	s, ok := sr.byUser[userID]
	if !ok {
		return nil, settings.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (sr *FakeSettingsRepo) Upsert(_ context.Context, s *settings.Settings) (*settings.Settings, error) {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	stored := *s
	stored.UpdatedAt = time.Now()
	sr.byUser[stored.UserID] = &stored
	copied := stored
	return &copied, nil
}
