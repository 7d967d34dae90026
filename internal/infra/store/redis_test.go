//go:build e2e

package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"holidaze-booking/internal/infra/store"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = container.Terminate(cleanupCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	s := store.NewRedisStore(client)

	t.Run("set then get round-trips the document", func(t *testing.T) {
		doc := []byte(`{"bookings":[{"id":"b-1"}]}`)
		require.NoError(t, s.Set(ctx, "bookings", doc))

		got, err := s.Get(ctx, "bookings")
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("keys are stored under the service prefix", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "prefixed", []byte(`{"v":1}`)))

		val, err := client.Get(ctx, "holidaze:prefixed").Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":1}`), val)
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
