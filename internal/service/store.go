package service

import (
	"context"

	"github.com/mtlprog/workforce/internal/domain"
)

// TaskStore persists tasks.
// Create assigns ID, CreatedAt and UpdatedAt; Update refreshes UpdatedAt and
// returns domain.ErrTaskNotFound if the task does not exist.
// List methods return tasks ordered by ID.
type TaskStore interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, taskID int64) (*domain.Task, error)
	ListByReference(ctx context.Context, referenceID int64, referenceType domain.ReferenceType) ([]*domain.Task, error)
	ListByAssignees(ctx context.Context, assigneeIDs []int64) ([]*domain.Task, error)
	ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]*domain.Task, error)
}

// ActivityStore is the append-only task audit log.
// ListByTaskID returns activities ordered by CreatedAt, then ID.
type ActivityStore interface {
	Create(ctx context.Context, activity *domain.Activity) error
	ListByTaskID(ctx context.Context, taskID int64) ([]*domain.Activity, error)
}

// CommentStore is the append-only task comment log.
// ListByTaskID returns comments ordered by CreatedAt, then ID.
type CommentStore interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByTaskID(ctx context.Context, taskID int64) ([]*domain.Comment, error)
}
