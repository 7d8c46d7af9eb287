package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// ActivityStore keeps the task audit log in memory.
type ActivityStore struct {
	mu         sync.RWMutex
	activities []domain.Activity
	nextID     int64
	now        func() time.Time
}

// NewActivityStore creates an empty ActivityStore. nil now means time.Now.
func NewActivityStore(now func() time.Time) *ActivityStore {
	if now == nil {
		now = time.Now
	}
	return &ActivityStore{now: now}
}

// Create appends an activity and assigns its ID and CreatedAt.
func (s *ActivityStore) Create(_ context.Context, activity *domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	activity.ID = s.nextID
	activity.CreatedAt = s.now()
	s.activities = append(s.activities, *activity)

	return nil
}

// ListByTaskID returns the activities of a task, oldest first.
func (s *ActivityStore) ListByTaskID(_ context.Context, taskID int64) ([]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]*domain.Activity, 0)
	for i := range s.activities {
		if s.activities[i].TaskID == taskID {
			a := s.activities[i]
			activities = append(activities, &a)
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].ID < activities[j].ID
		}
		return activities[i].CreatedAt.Before(activities[j].CreatedAt)
	})
	return activities, nil
}

// Count returns the total number of stored activities.
func (s *ActivityStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
