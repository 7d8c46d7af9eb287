package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlprog/workforce/internal/config"
	"github.com/mtlprog/workforce/internal/database"
	"github.com/mtlprog/workforce/internal/repository"
	"github.com/mtlprog/workforce/internal/repository/memory"
	"github.com/mtlprog/workforce/internal/service"
)

// taskBackend is the set of stores the task service runs on.
type taskBackend interface {
	service.TaskStore
	Ping(ctx context.Context) error
}

type backend struct {
	kind       config.StoreBackend
	tasks      taskBackend
	activities service.ActivityStore
	comments   service.CommentStore
	close      func()
}

// Close releases resources held by the backend.
func (b *backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// openBackend builds the stores for kind. Memory stores stamp records with
// clock; the postgres backend uses database time and applies pending
// migrations before returning.
func openBackend(ctx context.Context, kind config.StoreBackend, databaseURL string, clock service.Clock) (*backend, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", kind, config.StoreMemory, config.StorePostgres)
	}

	if kind == config.StoreMemory {
		return &backend{
			kind:       kind,
			tasks:      memory.NewTaskStore(clock.Now),
			activities: memory.NewActivityStore(clock.Now),
			comments:   memory.NewCommentStore(clock.Now),
		}, nil
	}

	if databaseURL == "" {
		return nil, errors.New("database-url is required for the postgres store")
	}

	db, err := database.New(ctx, databaseURL, database.DefaultPoolOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	pool := db.Pool()
	return &backend{
		kind:       kind,
		tasks:      repository.NewTaskRepository(pool),
		activities: repository.NewActivityRepository(pool),
		comments:   repository.NewCommentRepository(pool),
		close:      db.Close,
	}, nil
}
