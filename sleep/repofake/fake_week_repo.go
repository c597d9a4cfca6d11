package fakeweekrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simfrisk/SleepJournal/sleep"
)

var _ sleep.Repo = (*FakeWeekRepo)(nil)

// FakeWeekRepo is an in-memory sleep.Repo for tests.
type FakeWeekRepo struct {
	weeks map[string]*sleep.Week // keyed userID/year/week
	lock  sync.RWMutex
}

func NewFakeWeekRepo() *FakeWeekRepo {
	return &FakeWeekRepo{weeks: make(map[string]*sleep.Week)}
}

func key(userID string, year, weekNumber int) string {
	return fmt.Sprintf("%s/%d/%d", userID, year, weekNumber)
}

func (wr *FakeWeekRepo) Upsert(_ context.Context, week *sleep.Week) (*sleep.Week, error) {
	wr.lock.Lock()
	defer wr.lock.Unlock()

	now := time.Now()
	stored := *week
	if existing, ok := wr.weeks[key(week.UserID, week.Year, week.WeekNumber)]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = uuid.New().String()
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	wr.weeks[key(stored.UserID, stored.Year, stored.WeekNumber)] = &stored
	copied := stored
	return &copied, nil
}

func (wr *FakeWeekRepo) Get(_ context.Context, userID string, year, weekNumber int) (*sleep.Week, error) {
	wr.lock.RLock()
	defer wr.lock.RUnlock()

	w, ok := wr.weeks[key(userID, year, weekNumber)]
	if !ok {
		return nil, sleep.ErrNotFound
	}
	copied := *w
	return &copied, nil
}

func (wr *FakeWeekRepo) ListByUser(_ context.Context, userID string, year int) ([]*sleep.Week, error) {
	wr.lock.RLock()
	defer wr.lock.RUnlock()

	out := make([]*sleep.Week, 0)
	for _, w := range wr.weeks {
		if w.UserID != userID {
			continue
		}
		if year != 0 && w.Year != year {
			continue
		}
		copied := *w
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].WeekNumber > out[j].WeekNumber
	})
	return out, nil
}
