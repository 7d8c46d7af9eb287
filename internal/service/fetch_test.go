package service_test

import (
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func (s *TaskServiceTestSuite) fetchIDs(assignees []int64, start, end time.Time) []int64 {
	tasks, err := s.taskService.FetchTasksByDate(s.ctx, assignees, start, end)
	s.Require().NoError(err)

	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		s.NotEqual(domain.TaskStatusCancelled, task.Status)
		ids = append(ids, task.ID)
	}
	return ids
}

// TestFetchTasksByDate_Window covers in-window, open-before and excluded tasks.
func (s *TaskServiceTestSuite) TestFetchTasksByDate_Window() {
	inside := s.seedTask(1, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCompleted, day(12))
	openBefore := s.seedTask(2, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusAssigned, day(5))
	startedBefore := s.seedTask(3, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 2, domain.TaskStatusStarted, day(1))
	s.seedTask(4, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCompleted, day(5))
	s.seedTask(5, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCancelled, day(12))
	s.seedTask(6, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusAssigned, day(20))
	s.seedTask(7, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 3, domain.TaskStatusAssigned, day(12))

	ids := s.fetchIDs([]int64{1, 2}, day(10), day(14))
	s.Equal([]int64{inside.ID, openBefore.ID, startedBefore.ID}, ids)
}

// TestFetchTasksByDate_InclusiveBounds checks both window edges are inclusive.
func (s *TaskServiceTestSuite) TestFetchTasksByDate_InclusiveBounds() {
	onStart := s.seedTask(1, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCompleted, day(10))
	onEnd := s.seedTask(2, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCompleted, day(14))

	ids := s.fetchIDs([]int64{1}, day(10), day(14))
	s.Equal([]int64{onStart.ID, onEnd.ID}, ids)

	single := s.fetchIDs([]int64{1}, day(14), day(14))
	s.Equal([]int64{onEnd.ID}, single)
}

// TestFetchTasksByDate_IgnoresTimeOfDay checks window bounds compare as calendar days.
func (s *TaskServiceTestSuite) TestFetchTasksByDate_IgnoresTimeOfDay() {
	task := s.seedTask(1, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCompleted, day(14))

	ids := s.fetchIDs([]int64{1}, day(10).Add(18*time.Hour), day(14).Add(time.Hour))
	s.Equal([]int64{task.ID}, ids)
}

// TestFetchTasksByDate_Errors checks validation and empty assignee sets.
func (s *TaskServiceTestSuite) TestFetchTasksByDate_Errors() {
	_, err := s.taskService.FetchTasksByDate(s.ctx, []int64{1}, day(14), day(10))
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.taskService.FetchTasksByDate(s.ctx, []int64{1}, time.Time{}, day(10))
	s.ErrorIs(err, domain.ErrValidation)

	s.seedTask(1, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusAssigned, day(12))
	tasks, err := s.taskService.FetchTasksByDate(s.ctx, nil, day(10), day(14))
	s.Require().NoError(err)
	s.Empty(tasks)
}
