package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/workforce/internal/domain"
)

// ActivityRepository handles database operations for task activities.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Create appends a task activity.
func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query, args, err := psql.
		Insert("task_activities").
		Columns("task_id", "activity_type", "description", "acting_user_id", "old_value", "new_value").
		Values(
			activity.TaskID,
			activity.Type,
			activity.Description,
			activity.ActingUserID,
			activity.OldValue,
			activity.NewValue,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return unavailable("create task activity", err)
	}

	return nil
}

// ListByTaskID retrieves all activities for a task, oldest first.
func (r *ActivityRepository) ListByTaskID(ctx context.Context, taskID int64) ([]*domain.Activity, error) {
	query, args, err := psql.
		Select("id", "task_id", "activity_type", "description", "acting_user_id", "old_value", "new_value", "created_at").
		From("task_activities").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable("query task activities", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		var activity domain.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.TaskID,
			&activity.Type,
			&activity.Description,
			&activity.ActingUserID,
			&activity.OldValue,
			&activity.NewValue,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, unavailable("scan task activity", err)
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate rows", err)
	}

	return activities, nil
}
