package domain

import "time"

// ActivityType represents the kind of mutation an activity records.
type ActivityType string

const (
	ActivityTypeCreated         ActivityType = "CREATED"
	ActivityTypeAssigned        ActivityType = "ASSIGNED"
	ActivityTypeReassigned      ActivityType = "REASSIGNED"
	ActivityTypeStatusChanged   ActivityType = "STATUS_CHANGED"
	ActivityTypePriorityChanged ActivityType = "PRIORITY_CHANGED"
	ActivityTypeCancelled       ActivityType = "CANCELLED"
	ActivityTypeCommentAdded    ActivityType = "COMMENT_ADDED"
)

// Activity represents an audit log entry for a task mutation.
// Activities are append-only.
type Activity struct {
	ID           int64
	TaskID       int64
	Type         ActivityType
	Description  string
	ActingUserID *int64
	OldValue     *string
	NewValue     *string
	CreatedAt    time.Time
}

// Comment is a user note attached to a task.
type Comment struct {
	ID           int64
	TaskID       int64
	Text         string
	AuthorUserID int64
	CreatedAt    time.Time
}

// TaskDetail is a task together with its ordered audit and comment history.
type TaskDetail struct {
	Task       *Task
	Activities []*Activity
	Comments   []*Comment
}
