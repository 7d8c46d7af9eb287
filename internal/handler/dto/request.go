package dto

import "time"

// CreateTasksRequest represents the request body for POST /tasks.
type CreateTasksRequest struct {
	Requests []CreateTaskItem `json:"requests"`
}

// CreateTaskItem is a single task to create.
type CreateTaskItem struct {
	ReferenceID      int64      `json:"reference_id"`
	ReferenceType    string     `json:"reference_type"`
	Task             string     `json:"task"`
	AssigneeID       *int64     `json:"assignee_id,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	TaskDeadlineTime *time.Time `json:"task_deadline_time,omitempty"`
	StartDate        string     `json:"start_date,omitempty"` // YYYY-MM-DD
	Description      string     `json:"description,omitempty"`
}

// UpdateTasksRequest represents the request body for PATCH /tasks.
type UpdateTasksRequest struct {
	Requests []UpdateTaskItem `json:"requests"`
}

// UpdateTaskItem is a single task update. Omitted fields are left unchanged.
type UpdateTaskItem struct {
	TaskID      int64   `json:"task_id"`
	TaskStatus  string  `json:"task_status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdatePriorityRequest represents the request body for PATCH /tasks/:id/priority.
type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

// AddCommentRequest represents the request body for POST /tasks/:id/comments.
type AddCommentRequest struct {
	UserID  int64  `json:"user_id"`
	Comment string `json:"comment"`
}

// AssignByReferenceRequest represents the request body for POST /assignments.
type AssignByReferenceRequest struct {
	ReferenceID   int64  `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
	AssigneeID    int64  `json:"assignee_id"`
}
