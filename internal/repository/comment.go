package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/workforce/internal/domain"
)

// CommentRepository handles database operations for task comments.
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

// Create appends a comment to a task.
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query, args, err := psql.
		Insert("task_comments").
		Columns("task_id", "text", "author_user_id").
		Values(comment.TaskID, comment.Text, comment.AuthorUserID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return unavailable("create task comment", err)
	}

	return nil
}

// ListByTaskID retrieves all comments for a task, oldest first.
func (r *CommentRepository) ListByTaskID(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	query, args, err := psql.
		Select("id", "task_id", "text", "author_user_id", "created_at").
		From("task_comments").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable("query task comments", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.TaskID,
			&comment.Text,
			&comment.AuthorUserID,
			&comment.CreatedAt,
		); err != nil {
			return nil, unavailable("scan task comment", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate rows", err)
	}

	return comments, nil
}
