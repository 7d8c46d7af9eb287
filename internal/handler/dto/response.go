package dto

import (
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// TaskResponse represents a task in list and mutation responses.
type TaskResponse struct {
	ID               int64     `json:"id"`
	ReferenceID      int64     `json:"reference_id"`
	ReferenceType    string    `json:"reference_type"`
	Task             string    `json:"task"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	AssigneeID       *int64    `json:"assignee_id"`
	TaskDeadlineTime time.Time `json:"task_deadline_time"`
	Priority         string    `json:"priority"`
	StartDate        string    `json:"start_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TasksResponse wraps a list of tasks.
type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskDetailResponse represents a task with its full history.
type TaskDetailResponse struct {
	TaskResponse
	Activities []ActivityResponse `json:"activities"`
	Comments   []CommentResponse  `json:"comments"`
}

// ActivityResponse represents a single audit entry.
type ActivityResponse struct {
	ID           int64     `json:"id"`
	TaskID       int64     `json:"task_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	UserID       *int64    `json:"user_id"`
	OldValue     *string   `json:"old_value"`
	NewValue     *string   `json:"new_value"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommentResponse represents a single task comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	Comment   string    `json:"comment"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:               task.ID,
		ReferenceID:      task.ReferenceID,
		ReferenceType:    string(task.ReferenceType),
		Task:             string(task.Type),
		Description:      task.Description,
		Status:           string(task.Status),
		AssigneeID:       task.AssigneeID,
		TaskDeadlineTime: task.Deadline,
		Priority:         string(task.Priority),
		StartDate:        task.StartDate.Format(time.DateOnly),
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}
}

// ToTasksResponse converts a slice of tasks.
func ToTasksResponse(tasks []*domain.Task) TasksResponse {
	resp := TasksResponse{Tasks: make([]TaskResponse, len(tasks))}
	for i, task := range tasks {
		resp.Tasks[i] = ToTaskResponse(task)
	}
	return resp
}

// ToActivityResponse converts domain.Activity to ActivityResponse.
func ToActivityResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           activity.ID,
		TaskID:       activity.TaskID,
		ActivityType: string(activity.Type),
		Description:  activity.Description,
		UserID:       activity.ActingUserID,
		OldValue:     activity.OldValue,
		NewValue:     activity.NewValue,
		CreatedAt:    activity.CreatedAt,
	}
}

// ToCommentResponse converts domain.Comment to CommentResponse.
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Comment:   comment.Text,
		UserID:    comment.AuthorUserID,
		CreatedAt: comment.CreatedAt,
	}
}

// ToTaskDetailResponse converts domain.TaskDetail to TaskDetailResponse.
func ToTaskDetailResponse(detail *domain.TaskDetail) TaskDetailResponse {
	resp := TaskDetailResponse{
		TaskResponse: ToTaskResponse(detail.Task),
		Activities:   make([]ActivityResponse, len(detail.Activities)),
		Comments:     make([]CommentResponse, len(detail.Comments)),
	}
	for i, activity := range detail.Activities {
		resp.Activities[i] = ToActivityResponse(activity)
	}
	for i, comment := range detail.Comments {
		resp.Comments[i] = ToCommentResponse(comment)
	}
	return resp
}
