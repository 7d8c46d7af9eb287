// Package memory provides in-process stores backed by maps.
// Each store serializes writes behind a mutex and hands out copies,
// so readers never observe a partially applied write.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// TaskStore keeps tasks in memory.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	nextID int64
	now    func() time.Time
}

// NewTaskStore creates an empty TaskStore. now stamps CreatedAt/UpdatedAt;
// nil means time.Now.
func NewTaskStore(now func() time.Time) *TaskStore {
	if now == nil {
		now = time.Now
	}
	return &TaskStore{
		tasks: make(map[int64]*domain.Task),
		now:   now,
	}
}

// Create stores a new task and assigns its ID and timestamps.
func (s *TaskStore) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	ts := s.now()

	task.ID = s.nextID
	task.CreatedAt = ts
	task.UpdatedAt = ts
	s.tasks[task.ID] = task.Clone()

	return task, nil
}

// Update replaces an existing task and refreshes UpdatedAt.
func (s *TaskStore) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok {
		return nil, fmt.Errorf("update task %d: %w", task.ID, domain.ErrTaskNotFound)
	}

	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = s.now()
	s.tasks[task.ID] = task.Clone()

	return task, nil
}

// GetByID retrieves a task by ID.
func (s *TaskStore) GetByID(_ context.Context, taskID int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", taskID, domain.ErrTaskNotFound)
	}
	return task.Clone(), nil
}

// ListByReference returns all tasks serving the given reference.
func (s *TaskStore) ListByReference(_ context.Context, referenceID int64, referenceType domain.ReferenceType) ([]*domain.Task, error) {
	return s.filter(func(t *domain.Task) bool {
		return t.ReferenceID == referenceID && t.ReferenceType == referenceType
	}), nil
}

// ListByAssignees returns all tasks assigned to any of the given workers.
func (s *TaskStore) ListByAssignees(_ context.Context, assigneeIDs []int64) ([]*domain.Task, error) {
	if len(assigneeIDs) == 0 {
		return []*domain.Task{}, nil
	}
	return s.filter(func(t *domain.Task) bool {
		return t.AssigneeID != nil && slices.Contains(assigneeIDs, *t.AssigneeID)
	}), nil
}

// ListByPriority returns all tasks with the given priority.
func (s *TaskStore) ListByPriority(_ context.Context, priority domain.TaskPriority) ([]*domain.Task, error) {
	return s.filter(func(t *domain.Task) bool {
		return t.Priority == priority
	}), nil
}

// Ping always succeeds for the in-memory store.
func (s *TaskStore) Ping(context.Context) error {
	return nil
}

// filter returns copies of matching tasks ordered by ID.
func (s *TaskStore) filter(match func(*domain.Task) bool) []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if match(task) {
			tasks = append(tasks, task.Clone())
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}
