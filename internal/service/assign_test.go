package service_test

import (
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

func (s *TaskServiceTestSuite) referenceTasks(refID int64, refType domain.ReferenceType) []*domain.Task {
	tasks, err := s.taskStore.ListByReference(s.ctx, refID, refType)
	s.Require().NoError(err)
	return tasks
}

// TestAssignByReference_CreatesMissingTasks covers a reference with no tasks yet.
func (s *TaskServiceTestSuite) TestAssignByReference_CreatesMissingTasks() {
	msg, err := s.taskService.AssignByReference(s.ctx, 500, domain.ReferenceTypeOrder, 7)
	s.Require().NoError(err)
	s.Equal("Tasks assigned successfully for reference 500", msg)

	tasks := s.referenceTasks(500, domain.ReferenceTypeOrder)
	s.Require().Len(tasks, 2)
	s.Equal(domain.TaskTypeCreateInvoice, tasks[0].Type)
	s.Equal(domain.TaskTypeArrangePickup, tasks[1].Type)

	for _, task := range tasks {
		s.True(task.IsAssignedTo(7))
		s.Equal(domain.TaskStatusAssigned, task.Status)
		s.Equal(domain.TaskPriorityMedium, task.Priority)
		s.Equal(domain.DateOf(testNow), task.StartDate)
		s.Equal(testNow.Add(24*time.Hour), task.Deadline)

		activities := s.activities(task.ID)
		s.Require().Len(activities, 1)
		s.Equal(domain.ActivityTypeCreated, activities[0].Type)
		s.Equal("ASSIGNED", *activities[0].NewValue)
	}
}

// TestAssignByReference_CancelsDuplicates covers two live tasks of one type.
func (s *TaskServiceTestSuite) TestAssignByReference_CancelsDuplicates() {
	first := s.seedTask(300, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusAssigned, testNow)
	second := s.seedTask(300, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 2, domain.TaskStatusStarted, testNow)

	_, err := s.taskService.AssignByReference(s.ctx, 300, domain.ReferenceTypeOrder, 9)
	s.Require().NoError(err)

	survivor, err := s.taskStore.GetByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.True(survivor.IsAssignedTo(9))
	s.Equal(domain.TaskStatusAssigned, survivor.Status)

	survivorActivities := s.activities(first.ID)
	s.Require().Len(survivorActivities, 1)
	s.Equal(domain.ActivityTypeReassigned, survivorActivities[0].Type)
	s.Equal("1", *survivorActivities[0].OldValue)
	s.Equal("9", *survivorActivities[0].NewValue)

	cancelled, err := s.taskStore.GetByID(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusCancelled, cancelled.Status)
	s.True(cancelled.IsAssignedTo(2))

	cancelledActivities := s.activities(second.ID)
	s.Require().Len(cancelledActivities, 1)
	s.Equal(domain.ActivityTypeCancelled, cancelledActivities[0].Type)
	s.Nil(cancelledActivities[0].OldValue)
	s.Equal("CANCELLED", *cancelledActivities[0].NewValue)

	// ARRANGE_PICKUP had no task and is created.
	tasks := s.referenceTasks(300, domain.ReferenceTypeOrder)
	s.Require().Len(tasks, 3)
	s.Equal(domain.TaskTypeArrangePickup, tasks[2].Type)
	s.True(tasks[2].IsAssignedTo(9))
}

// TestAssignByReference_Convergence checks exactly one live task per type afterwards.
func (s *TaskServiceTestSuite) TestAssignByReference_Convergence() {
	s.seedTask(201, domain.ReferenceTypeEntity, domain.TaskTypeAssignCustomerToSalesPerson, 2, domain.TaskStatusAssigned, testNow)
	s.seedTask(201, domain.ReferenceTypeEntity, domain.TaskTypeAssignCustomerToSalesPerson, 3, domain.TaskStatusAssigned, testNow)
	s.seedTask(201, domain.ReferenceTypeEntity, domain.TaskTypeAssignCustomerToSalesPerson, 4, domain.TaskStatusStarted, testNow)

	_, err := s.taskService.AssignByReference(s.ctx, 201, domain.ReferenceTypeEntity, 8)
	s.Require().NoError(err)

	// A second pass is idempotent in outcome.
	_, err = s.taskService.AssignByReference(s.ctx, 201, domain.ReferenceTypeEntity, 8)
	s.Require().NoError(err)

	live := 0
	cancelled := 0
	for _, task := range s.referenceTasks(201, domain.ReferenceTypeEntity) {
		switch {
		case !task.Status.IsTerminal():
			live++
			s.True(task.IsAssignedTo(8))
		case task.Status == domain.TaskStatusCancelled:
			cancelled++
		}
	}
	s.Equal(1, live)
	s.Equal(2, cancelled)
}

// TestAssignByReference_SkipsTerminalTasks checks completed and cancelled tasks stay as they are.
func (s *TaskServiceTestSuite) TestAssignByReference_SkipsTerminalTasks() {
	done := s.seedTask(101, domain.ReferenceTypeOrder, domain.TaskTypeArrangePickup, 1, domain.TaskStatusCompleted, testNow)
	gone := s.seedTask(101, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 1, domain.TaskStatusCancelled, testNow)

	_, err := s.taskService.AssignByReference(s.ctx, 101, domain.ReferenceTypeOrder, 6)
	s.Require().NoError(err)

	stillDone, err := s.taskStore.GetByID(s.ctx, done.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusCompleted, stillDone.Status)
	s.True(stillDone.IsAssignedTo(1))
	s.Empty(s.activities(done.ID))

	stillGone, err := s.taskStore.GetByID(s.ctx, gone.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusCancelled, stillGone.Status)
	s.Empty(s.activities(gone.ID))

	tasks := s.referenceTasks(101, domain.ReferenceTypeOrder)
	s.Require().Len(tasks, 4)
	for _, task := range tasks[2:] {
		s.True(task.IsAssignedTo(6))
		s.Equal(domain.TaskStatusAssigned, task.Status)
	}
}

// TestAssignByReference_LeavesOtherReferencesAlone checks scoping by reference.
func (s *TaskServiceTestSuite) TestAssignByReference_LeavesOtherReferencesAlone() {
	other := s.seedTask(102, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 2, domain.TaskStatusAssigned, testNow)

	_, err := s.taskService.AssignByReference(s.ctx, 101, domain.ReferenceTypeOrder, 6)
	s.Require().NoError(err)

	untouched, err := s.taskStore.GetByID(s.ctx, other.ID)
	s.Require().NoError(err)
	s.True(untouched.IsAssignedTo(2))
}

// TestAssignByReference_Validation checks malformed input writes nothing.
func (s *TaskServiceTestSuite) TestAssignByReference_Validation() {
	_, err := s.taskService.AssignByReference(s.ctx, 1, "SHIPMENT", 5)
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.taskService.AssignByReference(s.ctx, 0, domain.ReferenceTypeOrder, 5)
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.taskService.AssignByReference(s.ctx, 1, domain.ReferenceTypeOrder, 0)
	s.ErrorIs(err, domain.ErrValidation)

	s.Equal(0, s.activityStore.Count())
}
