package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/workforce/internal/domain"
)

func TestIsActiveInWindow(t *testing.T) {
	start := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -3)
	after := end.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		status domain.TaskStatus
		date   time.Time
		want   bool
	}{
		{"assigned before window", domain.TaskStatusAssigned, before, true},
		{"started before window", domain.TaskStatusStarted, before, true},
		{"completed before window", domain.TaskStatusCompleted, before, false},
		{"cancelled before window", domain.TaskStatusCancelled, before, false},
		{"completed inside window", domain.TaskStatusCompleted, start.AddDate(0, 0, 2), true},
		{"cancelled inside window", domain.TaskStatusCancelled, start, false},
		{"assigned after window", domain.TaskStatusAssigned, after, false},
		{"no start date", domain.TaskStatusAssigned, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &domain.Task{Status: tt.status, StartDate: tt.date}
			assert.Equal(t, tt.want, IsActiveInWindow(task, start, end))
		})
	}
}
