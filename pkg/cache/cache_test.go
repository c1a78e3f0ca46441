package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/pkg/cache"
)

func TestRedis(t *testing.T) {
	t.Parallel()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	ctx := context.Background()

	client, err := cache.Connect(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.New(client, "test:"+uuid.Must(uuid.NewV4()).String()+":")

	_, err = c.Get(ctx, "session")
	require.ErrorIs(t, err, cache.ErrMiss)

	err = c.Set(ctx, "session", "abc", time.Minute)
	require.NoError(t, err)

	v, err := c.Get(ctx, "session")
	require.NoError(t, err)
	require.Equal(t, "abc", v)

	err = c.Delete(ctx, "session")
	require.NoError(t, err)

	_, err = c.Get(ctx, "session")
	require.ErrorIs(t, err, cache.ErrMiss)
}
