package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/workforce/internal/domain"
)

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "reference_id", "reference_type", "task_type", "assignee_id",
	"status", "priority", "description", "start_date", "deadline",
	"created_at", "updated_at",
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.ReferenceID,
		&task.ReferenceType,
		&task.Type,
		&task.AssigneeID,
		&task.Status,
		&task.Priority,
		&task.Description,
		&task.StartDate,
		&task.Deadline,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, unavailable("scan task", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate task rows", err)
	}
	return tasks, nil
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	task, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil, fmt.Errorf("task %d: %w", taskID, err)
	}
	return task, err
}

// Create inserts a new task.
// Returns the created task with ID, CreatedAt, and UpdatedAt populated.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query, args, err := psql.
		Insert("tasks").
		Columns(
			"reference_id", "reference_type", "task_type", "assignee_id",
			"status", "priority", "description", "start_date", "deadline",
		).
		Values(
			task.ReferenceID,
			task.ReferenceType,
			task.Type,
			task.AssigneeID,
			task.Status,
			task.Priority,
			task.Description,
			task.StartDate,
			task.Deadline,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for task: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, unavailable("create task", err)
	}

	return task, nil
}

// Update overwrites the mutable fields of a task and refreshes updated_at.
// Returns ErrTaskNotFound if no row has the task's ID.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query, args, err := psql.
		Update("tasks").
		Set("assignee_id", task.AssigneeID).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("description", task.Description).
		Set("start_date", task.StartDate).
		Set("deadline", task.Deadline).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": task.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for task %d: %w", task.ID, err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("update task %d: %w", task.ID, domain.ErrTaskNotFound)
		}
		return nil, unavailable("update task", err)
	}

	return task, nil
}

// Ping checks that the database is reachable.
func (r *TaskRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}
