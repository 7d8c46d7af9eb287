package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// CommentStore keeps task comments in memory.
type CommentStore struct {
	mu       sync.RWMutex
	comments []domain.Comment
	nextID   int64
	now      func() time.Time
}

// NewCommentStore creates an empty CommentStore. nil now means time.Now.
func NewCommentStore(now func() time.Time) *CommentStore {
	if now == nil {
		now = time.Now
	}
	return &CommentStore{now: now}
}

// Create appends a comment and assigns its ID and CreatedAt.
func (s *CommentStore) Create(_ context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	comment.ID = s.nextID
	comment.CreatedAt = s.now()
	s.comments = append(s.comments, *comment)

	return nil
}

// ListByTaskID returns the comments of a task, oldest first.
func (s *CommentStore) ListByTaskID(_ context.Context, taskID int64) ([]*domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*domain.Comment, 0)
	for i := range s.comments {
		if s.comments[i].TaskID == taskID {
			c := s.comments[i]
			comments = append(comments, &c)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}
