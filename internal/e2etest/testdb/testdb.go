// Package testdb runs a disposable Postgres server for DB-backed tests.
package testdb

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestDBInstance struct {
	DSN       string
	container *postgres.PostgresContainer
}

func NewTestDBInstance() (*TestDBInstance, error) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to build connection string: %w", err)
	}

	return &TestDBInstance{DSN: dsn, container: container}, nil
}

func (t *TestDBInstance) Down() {
	if t.container != nil {
		_ = t.container.Terminate(context.Background())
	}
}
