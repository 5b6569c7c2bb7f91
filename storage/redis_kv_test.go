package storage

import (
	"context"
	"os"
	"testing"

	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// Runs against a real redis when REDIS_ADDR is set, e.g. localhost:6379.
func TestRedisKeyValueStorage(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	logging.Log = logrus.New()

	ctx := context.Background()
	prefix := uniquePrefix(t)
	kv, err := NewRedisKeyValueStorage(ctx, addr, prefix)
	require.NoError(t, err)
	t.Cleanup(func() {
		keys, err := kv.Client.Keys(ctx, prefix+"*").Result()
		if err == nil && len(keys) > 0 {
			kv.Client.Del(ctx, keys...)
		}
		_ = kv.Close()
	})

	testKeyValueContract(t, kv, "")
}

func TestEntryFromHash(t *testing.T) {
	entry, err := entryFromHash("k", map[string]string{
		"value":     "abc",
		"version":   "3",
		"updatedAt": "2025-03-01T12:00:00Z",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), entry.Version)
	require.Equal(t, []byte("abc"), entry.Value)

	_, err = entryFromHash("k", map[string]string{"value": "abc", "version": "nope"})
	require.Error(t, err)
}
