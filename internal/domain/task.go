package domain

import "time"

// TaskStatus represents the lifecycle status of a task.
type TaskStatus string

const (
	TaskStatusAssigned  TaskStatus = "ASSIGNED"
	TaskStatusStarted   TaskStatus = "STARTED"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusCancelled TaskStatus = "CANCELLED"
)

// IsTerminal returns true if the status is terminal (COMPLETED or CANCELLED).
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// IsOpen returns true if work on the task is still pending.
func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusAssigned || s == TaskStatusStarted
}

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusAssigned, TaskStatusStarted, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// ReferenceType identifies the kind of external business object a task serves.
type ReferenceType string

const (
	ReferenceTypeOrder  ReferenceType = "ORDER"
	ReferenceTypeEntity ReferenceType = "ENTITY"
)

// TaskType is the kind of work a task represents.
type TaskType string

const (
	TaskTypeCreateInvoice               TaskType = "CREATE_INVOICE"
	TaskTypeArrangePickup               TaskType = "ARRANGE_PICKUP"
	TaskTypeAssignCustomerToSalesPerson TaskType = "ASSIGN_CUSTOMER_TO_SALES_PERSON"
)

// Task represents a unit of work tied to an external reference.
type Task struct {
	ID            int64
	ReferenceID   int64
	ReferenceType ReferenceType
	Type          TaskType
	AssigneeID    *int64
	Status        TaskStatus
	Priority      TaskPriority
	Description   string
	StartDate     time.Time // calendar date, see DateOf
	Deadline      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAssignedTo checks if the task is assigned to the given worker.
func (t *Task) IsAssignedTo(assigneeID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == assigneeID
}

// Clone returns a copy of the task that shares no pointers with the original.
func (t *Task) Clone() *Task {
	c := *t
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		c.AssigneeID = &id
	}
	return &c
}

// DateOf truncates t to midnight UTC of its own calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
