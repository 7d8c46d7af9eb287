package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mtlprog/workforce/internal/domain"
)

const referenceAssignmentDescription = "Task created via reference assignment"

// AssignByReference hands every task type required by the reference to assigneeID.
//
// For each applicable task type, the live (non-terminal) task with the lowest
// ID survives and is reassigned; its live siblings are cancelled. If no live
// task of that type exists, a new one is created. Completed and cancelled
// tasks are left untouched.
func (s *TaskService) AssignByReference(
	ctx context.Context,
	referenceID int64,
	referenceType domain.ReferenceType,
	assigneeID int64,
) (string, error) {
	if err := s.validator.ValidateReference(referenceID, referenceType); err != nil {
		return "", err
	}
	if err := s.validator.ValidateAssignee(assigneeID); err != nil {
		return "", err
	}

	existing, err := s.taskStore.ListByReference(ctx, referenceID, referenceType)
	if err != nil {
		return "", fmt.Errorf("list tasks for reference %d: %w", referenceID, err)
	}

	for _, taskType := range s.catalog.ApplicableTaskTypes(referenceType) {
		live := liveTasksOfType(existing, taskType)

		if len(live) == 0 {
			if err := s.createForReference(ctx, referenceID, referenceType, taskType, assigneeID); err != nil {
				return "", fmt.Errorf("assign %s for reference %d: %w", taskType, referenceID, err)
			}
			continue
		}

		if err := s.reassign(ctx, live[0], assigneeID); err != nil {
			return "", fmt.Errorf("assign %s for reference %d: %w", taskType, referenceID, err)
		}
		for _, duplicate := range live[1:] {
			if err := s.cancelDuplicate(ctx, duplicate); err != nil {
				return "", fmt.Errorf("assign %s for reference %d: %w", taskType, referenceID, err)
			}
		}
	}

	slog.Info("reference assigned",
		"reference_id", referenceID,
		"reference_type", referenceType,
		"assignee_id", assigneeID,
	)

	return fmt.Sprintf("Tasks assigned successfully for reference %d", referenceID), nil
}

// liveTasksOfType selects non-terminal tasks of taskType ordered by ID.
func liveTasksOfType(tasks []*domain.Task, taskType domain.TaskType) []*domain.Task {
	var live []*domain.Task
	for _, task := range tasks {
		if task.Type == taskType && !task.Status.IsTerminal() {
			live = append(live, task)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].ID < live[j].ID })
	return live
}

func (s *TaskService) createForReference(
	ctx context.Context,
	referenceID int64,
	referenceType domain.ReferenceType,
	taskType domain.TaskType,
	assigneeID int64,
) error {
	now := s.clock.Now()
	task, err := s.taskStore.Create(ctx, &domain.Task{
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
		Type:          taskType,
		AssigneeID:    &assigneeID,
		Status:        domain.TaskStatusAssigned,
		Priority:      domain.TaskPriorityMedium,
		Description:   referenceAssignmentDescription,
		StartDate:     domain.DateOf(now),
		Deadline:      now.Add(defaultDeadlineOffset),
	})
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	activity, err := s.logActivity(ctx, task.ID, domain.ActivityTypeCreated,
		referenceAssignmentDescription, &assigneeID, nil, statusValue(task.Status))
	if err != nil {
		return err
	}

	slog.Info("task created",
		"task_id", task.ID,
		"reference_id", referenceID,
		"task_type", taskType,
		"activity_id", activity.ID,
	)

	return nil
}

// reassign makes task the survivor for its type by handing it to assigneeID.
func (s *TaskService) reassign(ctx context.Context, task *domain.Task, assigneeID int64) error {
	taskID := task.ID
	oldAssignee := task.AssigneeID
	task.AssigneeID = &assigneeID

	task, err := s.taskStore.Update(ctx, task)
	if err != nil {
		return fmt.Errorf("update task %d: %w", taskID, err)
	}

	activity, err := s.logActivity(ctx, task.ID, domain.ActivityTypeReassigned,
		"Task reassigned to new assignee", &assigneeID, assigneeValue(oldAssignee), assigneeValue(&assigneeID))
	if err != nil {
		return err
	}

	slog.Info("task reassigned",
		"task_id", task.ID,
		"old_assignee_id", assigneeValue(oldAssignee),
		"new_assignee_id", assigneeID,
		"activity_id", activity.ID,
	)

	return nil
}

// cancelDuplicate cancels a live sibling of the survivor.
func (s *TaskService) cancelDuplicate(ctx context.Context, task *domain.Task) error {
	taskID := task.ID
	task.Status = domain.TaskStatusCancelled

	task, err := s.taskStore.Update(ctx, task)
	if err != nil {
		return fmt.Errorf("update task %d: %w", taskID, err)
	}

	activity, err := s.logActivity(ctx, task.ID, domain.ActivityTypeCancelled,
		"Task cancelled due to reassignment", task.AssigneeID, nil, statusValue(domain.TaskStatusCancelled))
	if err != nil {
		return err
	}

	slog.Info("duplicate task cancelled",
		"task_id", task.ID,
		"activity_id", activity.ID,
	)

	return nil
}
