package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// TaskService coordinates task lifecycle operations and their audit trail.
type TaskService struct {
	taskStore     TaskStore
	activityStore ActivityStore
	commentStore  CommentStore
	catalog       *domain.Catalog
	clock         Clock
	validator     *Validator
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskStore TaskStore,
	activityStore ActivityStore,
	commentStore CommentStore,
	catalog *domain.Catalog,
	clock Clock,
) *TaskService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TaskService{
		taskStore:     taskStore,
		activityStore: activityStore,
		commentStore:  commentStore,
		catalog:       catalog,
		clock:         clock,
		validator:     NewValidator(catalog),
	}
}

// Catalog returns the reference type catalog the service validates against.
func (s *TaskService) Catalog() *domain.Catalog {
	return s.catalog
}

// CreateTaskParams holds the input for a single task creation.
// Nil optional fields take their defaults.
type CreateTaskParams struct {
	ReferenceID   int64
	ReferenceType domain.ReferenceType
	Type          domain.TaskType
	AssigneeID    *int64
	Priority      *domain.TaskPriority
	Deadline      *time.Time
	StartDate     *time.Time
	Description   string
}

// UpdateTaskParams holds the input for a single task update.
type UpdateTaskParams struct {
	TaskID      int64
	Status      *domain.TaskStatus
	Description *string
}

const defaultCreateDescription = "New task created."

// logActivity appends an audit entry for a task mutation.
func (s *TaskService) logActivity(
	ctx context.Context,
	taskID int64,
	activityType domain.ActivityType,
	description string,
	actingUserID *int64,
	oldValue, newValue *string,
) (*domain.Activity, error) {
	activity := &domain.Activity{
		TaskID:       taskID,
		Type:         activityType,
		Description:  description,
		ActingUserID: actingUserID,
		OldValue:     oldValue,
		NewValue:     newValue,
	}
	if err := s.activityStore.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create %s activity for task %d: %w", activityType, taskID, err)
	}
	return activity, nil
}

// CreateTasks validates and creates tasks, one CREATED activity per task.
// No task is written if any item fails validation.
func (s *TaskService) CreateTasks(ctx context.Context, items []CreateTaskParams) ([]*domain.Task, error) {
	for i, item := range items {
		if err := s.validator.ValidateCreate(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	now := s.clock.Now()
	created := make([]*domain.Task, 0, len(items))
	for _, item := range items {
		task := &domain.Task{
			ReferenceID:   item.ReferenceID,
			ReferenceType: item.ReferenceType,
			Type:          item.Type,
			AssigneeID:    item.AssigneeID,
			Status:        domain.TaskStatusAssigned,
			Priority:      domain.TaskPriorityMedium,
			Description:   defaultCreateDescription,
			StartDate:     domain.DateOf(now),
			Deadline:      now.Add(defaultDeadlineOffset),
		}
		if item.Priority != nil {
			task.Priority = *item.Priority
		}
		if item.Deadline != nil {
			task.Deadline = *item.Deadline
		}
		if item.StartDate != nil {
			task.StartDate = domain.DateOf(*item.StartDate)
		}
		if item.Description != "" {
			task.Description = item.Description
		}

		task, err := s.taskStore.Create(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("create task: %w", err)
		}

		activity, err := s.logActivity(ctx, task.ID, domain.ActivityTypeCreated,
			"Task created", task.AssigneeID, nil, statusValue(task.Status))
		if err != nil {
			return nil, err
		}

		slog.Info("task created",
			"task_id", task.ID,
			"reference_id", task.ReferenceID,
			"reference_type", task.ReferenceType,
			"task_type", task.Type,
			"activity_id", activity.ID,
		)

		created = append(created, task)
	}

	return created, nil
}

// UpdateTasks applies status and description changes to existing tasks.
// Every item is resolved and validated before any write, so a missing task
// or invalid status aborts the whole batch. Status changes are audited;
// description edits are not.
func (s *TaskService) UpdateTasks(ctx context.Context, items []UpdateTaskParams) ([]*domain.Task, error) {
	working := make(map[int64]*domain.Task, len(items))
	for _, item := range items {
		if item.Status != nil {
			if err := s.validator.ValidateStatus(*item.Status); err != nil {
				return nil, fmt.Errorf("task %d: %w", item.TaskID, err)
			}
		}
		if _, ok := working[item.TaskID]; ok {
			continue
		}
		task, err := s.taskStore.GetByID(ctx, item.TaskID)
		if err != nil {
			return nil, err
		}
		working[item.TaskID] = task
	}

	updated := make([]*domain.Task, 0, len(items))
	for _, item := range items {
		task := working[item.TaskID]
		oldStatus := task.Status

		if item.Status != nil {
			task.Status = *item.Status
		}
		if item.Description != nil {
			task.Description = *item.Description
		}

		saved, err := s.taskStore.Update(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("update task %d: %w", task.ID, err)
		}
		working[item.TaskID] = saved

		if item.Status != nil {
			activity, err := s.logActivity(ctx, saved.ID, domain.ActivityTypeStatusChanged,
				"Task status changed", saved.AssigneeID, statusValue(oldStatus), statusValue(saved.Status))
			if err != nil {
				return nil, err
			}

			slog.Info("task status changed",
				"task_id", saved.ID,
				"old_status", oldStatus,
				"new_status", saved.Status,
				"activity_id", activity.ID,
			)
		}

		updated = append(updated, saved.Clone())
	}

	return updated, nil
}

// UpdateTaskPriority changes the priority of a task.
func (s *TaskService) UpdateTaskPriority(ctx context.Context, taskID int64, priority domain.TaskPriority) (*domain.Task, error) {
	if err := s.validator.ValidatePriority(priority); err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	oldPriority := task.Priority
	task.Priority = priority

	task, err = s.taskStore.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", taskID, err)
	}

	activity, err := s.logActivity(ctx, task.ID, domain.ActivityTypePriorityChanged,
		"Task priority changed", task.AssigneeID, priorityValue(oldPriority), priorityValue(priority))
	if err != nil {
		return nil, err
	}

	slog.Info("task priority changed",
		"task_id", task.ID,
		"old_priority", oldPriority,
		"new_priority", priority,
		"activity_id", activity.ID,
	)

	return task, nil
}

// AddComment attaches a comment to a task and records a COMMENT_ADDED activity.
func (s *TaskService) AddComment(ctx context.Context, taskID, authorID int64, text string) (*domain.Comment, error) {
	if err := s.validator.ValidateAuthor(authorID); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	if _, err := s.taskStore.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:       taskID,
		Text:         text,
		AuthorUserID: authorID,
	}
	if err := s.commentStore.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment for task %d: %w", taskID, err)
	}

	activity, err := s.logActivity(ctx, taskID, domain.ActivityTypeCommentAdded,
		"Comment added to task", &authorID, nil, stringValue("Comment: "+text))
	if err != nil {
		return nil, err
	}

	slog.Info("comment added",
		"task_id", taskID,
		"comment_id", comment.ID,
		"activity_id", activity.ID,
	)

	return comment, nil
}

// FindTaskByID returns a task with its full activity and comment history.
func (s *TaskService) FindTaskByID(ctx context.Context, taskID int64) (*domain.TaskDetail, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityStore.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list activities for task %d: %w", taskID, err)
	}

	comments, err := s.commentStore.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments for task %d: %w", taskID, err)
	}

	return &domain.TaskDetail{
		Task:       task,
		Activities: activities,
		Comments:   comments,
	}, nil
}

// FindTasksByPriority returns non-cancelled tasks of the given priority.
func (s *TaskService) FindTasksByPriority(ctx context.Context, priority domain.TaskPriority) ([]*domain.Task, error) {
	if err := s.validator.ValidatePriority(priority); err != nil {
		return nil, err
	}

	tasks, err := s.taskStore.ListByPriority(ctx, priority)
	if err != nil {
		return nil, fmt.Errorf("list tasks by priority: %w", err)
	}

	return withoutCancelled(tasks), nil
}

// withoutCancelled drops CANCELLED tasks, keeping order.
func withoutCancelled(tasks []*domain.Task) []*domain.Task {
	result := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != domain.TaskStatusCancelled {
			result = append(result, task)
		}
	}
	return result
}

func stringValue(s string) *string {
	return &s
}

func statusValue(s domain.TaskStatus) *string {
	return stringValue(string(s))
}

func priorityValue(p domain.TaskPriority) *string {
	return stringValue(string(p))
}

// assigneeValue renders an optional assignee id; nil stays nil.
func assigneeValue(id *int64) *string {
	if id == nil {
		return nil
	}
	return stringValue(strconv.FormatInt(*id, 10))
}
