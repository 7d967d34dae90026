//go:build e2e

package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"holidaze-booking/internal/infra/store"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = container.Terminate(cleanupCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "failed to connect to postgres")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	return pool
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t)

	s := store.NewPostgresStore(pool)
	require.NoError(t, s.EnsureSchema(ctx))

	t.Run("schema creation is idempotent", func(t *testing.T) {
		require.NoError(t, s.EnsureSchema(ctx))
	})

	t.Run("set then get round-trips the document", func(t *testing.T) {
		doc := []byte(`{"bookings":[{"id":"b-1"}]}`)
		require.NoError(t, s.Set(ctx, "bookings", doc))

		got, err := s.Get(ctx, "bookings")
		require.NoError(t, err)
		assert.JSONEq(t, string(doc), string(got))
	})

	t.Run("set overwrites an existing document", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "bookings", []byte(`{"bookings":[]}`)))
		require.NoError(t, s.Set(ctx, "bookings", []byte(`{"bookings":[{"id":"b-2"}]}`)))

		got, err := s.Get(ctx, "bookings")
		require.NoError(t, err)
		assert.JSONEq(t, `{"bookings":[{"id":"b-2"}]}`, string(got))
	})

	t.Run("get reports a missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "absent")
		assert.ErrorIs(t, err, store.ErrKeyNotFound)
	})

	t.Run("remove deletes the document", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "ephemeral", []byte(`{"v":1}`)))
		require.NoError(t, s.Remove(ctx, "ephemeral"))

		_, err := s.Get(ctx, "ephemeral")
		assert.ErrorIs(t, err, store.ErrKeyNotFound)
	})

	t.Run("remove of a missing key is a no-op", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, "never-stored"))
	})
}
