package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// FetchTasksByDate returns the tasks of the given assignees that are active in
// the inclusive window [start, end]: tasks starting inside the window, plus
// tasks that started earlier and are still ASSIGNED or STARTED.
// Cancelled tasks are never returned.
func (s *TaskService) FetchTasksByDate(ctx context.Context, assigneeIDs []int64, start, end time.Time) ([]*domain.Task, error) {
	if err := s.validator.ValidateDateRange(start, end); err != nil {
		return nil, err
	}
	if len(assigneeIDs) == 0 {
		return []*domain.Task{}, nil
	}

	tasks, err := s.taskStore.ListByAssignees(ctx, assigneeIDs)
	if err != nil {
		return nil, fmt.Errorf("list tasks by assignees: %w", err)
	}

	windowStart := domain.DateOf(start)
	windowEnd := domain.DateOf(end)

	result := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if IsActiveInWindow(task, windowStart, windowEnd) {
			result = append(result, task)
		}
	}
	return result, nil
}

// IsActiveInWindow reports whether task is visible in the day window [start, end].
// start and end must already be truncated with domain.DateOf.
func IsActiveInWindow(task *domain.Task, start, end time.Time) bool {
	if task.Status == domain.TaskStatusCancelled || task.StartDate.IsZero() {
		return false
	}

	day := domain.DateOf(task.StartDate)
	startedInRange := !day.Before(start) && !day.After(end)
	openFromBefore := day.Before(start) && task.Status.IsOpen()

	return startedInRange || openFromBefore
}
