package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mtlprog/workforce/internal/domain"
)

// TaskListFilters holds the supported filters for task listing.
// Zero-valued fields are not applied.
type TaskListFilters struct {
	ReferenceID   *int64
	ReferenceType *domain.ReferenceType
	AssigneeIDs   []int64
	Priority      *domain.TaskPriority
}

// List retrieves tasks matching filters, ordered by id.
func (r *TaskRepository) List(ctx context.Context, filters TaskListFilters) ([]*domain.Task, error) {
	qb := psql.Select(taskColumns...).From("tasks")

	if filters.ReferenceID != nil {
		qb = qb.Where(sq.Eq{"reference_id": *filters.ReferenceID})
	}
	if filters.ReferenceType != nil {
		qb = qb.Where(sq.Eq{"reference_type": *filters.ReferenceType})
	}
	if filters.AssigneeIDs != nil {
		qb = qb.Where(sq.Eq{"assignee_id": filters.AssigneeIDs})
	}
	if filters.Priority != nil {
		qb = qb.Where(sq.Eq{"priority": *filters.Priority})
	}

	query, args, err := qb.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable("query tasks", err)
	}

	return scanTasks(rows)
}

// ListByReference returns all tasks serving the given reference.
func (r *TaskRepository) ListByReference(ctx context.Context, referenceID int64, referenceType domain.ReferenceType) ([]*domain.Task, error) {
	return r.List(ctx, TaskListFilters{
		ReferenceID:   &referenceID,
		ReferenceType: &referenceType,
	})
}

// ListByAssignees returns all tasks assigned to any of the given workers.
func (r *TaskRepository) ListByAssignees(ctx context.Context, assigneeIDs []int64) ([]*domain.Task, error) {
	if len(assigneeIDs) == 0 {
		return []*domain.Task{}, nil
	}
	return r.List(ctx, TaskListFilters{AssigneeIDs: assigneeIDs})
}

// ListByPriority returns all tasks with the given priority.
func (r *TaskRepository) ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]*domain.Task, error) {
	return r.List(ctx, TaskListFilters{Priority: &priority})
}
