package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/workforce/internal/config"
	"github.com/mtlprog/workforce/internal/domain"
	"github.com/mtlprog/workforce/internal/service"
)

func TestOpenBackend_Memory(t *testing.T) {
	b, err := openBackend(context.Background(), config.StoreMemory, "", service.SystemClock{})
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, config.StoreMemory, b.kind)
	assert.NoError(t, b.tasks.Ping(context.Background()))
}

func TestOpenBackend_MemoryUsesClock(t *testing.T) {
	ctx := context.Background()
	clock := service.FixedClock{T: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}

	b, err := openBackend(ctx, config.StoreMemory, "", clock)
	require.NoError(t, err)
	defer b.Close()

	task, err := b.tasks.Create(ctx, &domain.Task{
		ReferenceID:   1,
		ReferenceType: domain.ReferenceTypeOrder,
		Type:          domain.TaskTypeCreateInvoice,
		Status:        domain.TaskStatusAssigned,
		Priority:      domain.TaskPriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, clock.T, task.CreatedAt)
	assert.Equal(t, clock.T, task.UpdatedAt)

	activity := &domain.Activity{TaskID: task.ID, Type: domain.ActivityTypeCreated}
	require.NoError(t, b.activities.Create(ctx, activity))
	assert.Equal(t, clock.T, activity.CreatedAt)

	comment := &domain.Comment{TaskID: task.ID, Text: "hi", AuthorUserID: 2}
	require.NoError(t, b.comments.Create(ctx, comment))
	assert.Equal(t, clock.T, comment.CreatedAt)
}

func TestOpenBackend_Rejects(t *testing.T) {
	_, err := openBackend(context.Background(), config.StoreBackend("redis"), "", service.SystemClock{})
	assert.ErrorContains(t, err, "unknown store")

	_, err = openBackend(context.Background(), config.StorePostgres, "", service.SystemClock{})
	assert.ErrorContains(t, err, "database-url is required")
}
