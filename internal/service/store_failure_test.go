package service_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlprog/workforce/internal/domain"
	"github.com/mtlprog/workforce/internal/repository/memory"
	"github.com/mtlprog/workforce/internal/service"
)

var errStoreDown = fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, errors.New("down"))

// downActivityStore rejects every write.
type downActivityStore struct {
	*memory.ActivityStore
}

func (downActivityStore) Create(context.Context, *domain.Activity) error {
	return errStoreDown
}

// downTaskStore serves reads from memory and rejects updates and reference lookups.
type downTaskStore struct {
	*memory.TaskStore
}

func (downTaskStore) Update(context.Context, *domain.Task) (*domain.Task, error) {
	return nil, errStoreDown
}

func (downTaskStore) ListByReference(context.Context, int64, domain.ReferenceType) ([]*domain.Task, error) {
	return nil, errStoreDown
}

func (s *TaskServiceTestSuite) serviceWith(tasks service.TaskStore, activities service.ActivityStore) *service.TaskService {
	return service.NewTaskService(tasks, activities, s.commentStore,
		domain.DefaultCatalog(), service.FixedClock{T: testNow})
}

// TestStoreFailure_CreateTasks checks a failed audit write aborts creation.
func (s *TaskServiceTestSuite) TestStoreFailure_CreateTasks() {
	svc := s.serviceWith(s.taskStore, downActivityStore{s.activityStore})

	tasks, err := svc.CreateTasks(s.ctx, []service.CreateTaskParams{{
		ReferenceID:   5,
		ReferenceType: domain.ReferenceTypeOrder,
		Type:          domain.TaskTypeCreateInvoice,
		AssigneeID:    int64Ptr(3),
	}})

	s.ErrorIs(err, domain.ErrStoreUnavailable)
	s.Nil(tasks)
}

// TestStoreFailure_UpdateTasks checks a failed task write aborts the batch.
func (s *TaskServiceTestSuite) TestStoreFailure_UpdateTasks() {
	task := s.seedTask(5, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 3, domain.TaskStatusAssigned, testNow)
	svc := s.serviceWith(downTaskStore{s.taskStore}, s.activityStore)

	tasks, err := svc.UpdateTasks(s.ctx, []service.UpdateTaskParams{{
		TaskID: task.ID,
		Status: statusPtr(domain.TaskStatusStarted),
	}})

	s.ErrorIs(err, domain.ErrStoreUnavailable)
	s.Nil(tasks)
	s.Empty(s.activities(task.ID))

	stored, err := s.taskStore.GetByID(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusAssigned, stored.Status)
}

// TestStoreFailure_UpdateTaskPriority checks a failed write returns no task.
func (s *TaskServiceTestSuite) TestStoreFailure_UpdateTaskPriority() {
	task := s.seedTask(5, domain.ReferenceTypeOrder, domain.TaskTypeCreateInvoice, 3, domain.TaskStatusAssigned, testNow)
	svc := s.serviceWith(downTaskStore{s.taskStore}, s.activityStore)

	updated, err := svc.UpdateTaskPriority(s.ctx, task.ID, domain.TaskPriorityHigh)

	s.ErrorIs(err, domain.ErrStoreUnavailable)
	s.Nil(updated)
}

// TestStoreFailure_AssignByReference covers failures while reading and while auditing.
func (s *TaskServiceTestSuite) TestStoreFailure_AssignByReference() {
	svc := s.serviceWith(s.taskStore, downActivityStore{s.activityStore})

	msg, err := svc.AssignByReference(s.ctx, 5, domain.ReferenceTypeOrder, 3)
	s.ErrorIs(err, domain.ErrStoreUnavailable)
	s.Empty(msg)

	svc = s.serviceWith(downTaskStore{s.taskStore}, s.activityStore)

	msg, err = svc.AssignByReference(s.ctx, 6, domain.ReferenceTypeOrder, 3)
	s.ErrorIs(err, domain.ErrStoreUnavailable)
	s.Empty(msg)
	s.Empty(s.referenceTasks(6, domain.ReferenceTypeOrder))
}
