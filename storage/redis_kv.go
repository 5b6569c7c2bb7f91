package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/frontiertower/floorfinder-sub000/logging"
	goredis "github.com/redis/go-redis/v9"
)

const (
	redisPutAttempts = 3
	redisScanCount   = 100
)

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// RedisKeyValueStorage stores every entry as a hash with value, version and
// updatedAt fields. Version checks run inside WATCH/MULTI.
type RedisKeyValueStorage struct {
	Client goredis.UniversalClient
	Prefix string
	Now    func() time.Time
}

func NewRedisKeyValueStorage(ctx context.Context, addr, prefix string) (*RedisKeyValueStorage, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisKeyValueStorage{Client: rdb, Prefix: prefix}, nil
}

func (s *RedisKeyValueStorage) Get(ctx context.Context, key string) (*Entry, error) {
	fields, err := s.Client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		logging.Log.Errorf("KV: redis HGETALL %s failed: %v", key, err)
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	entry, err := entryFromHash(key, fields)
	if err != nil {
		logging.Log.Errorf("KV: malformed redis entry %s: %v", key, err)
		return nil, err
	}
	return entry, nil
}

func (s *RedisKeyValueStorage) Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	k := s.key(key)

	for attempt := 0; attempt < redisPutAttempts; attempt++ {
		var next int64
		err := s.Client.Watch(ctx, func(tx *goredis.Tx) error {
			current, err := tx.HGet(ctx, k, "version").Int64()
			if errors.Is(err, goredis.Nil) {
				current = 0
			} else if err != nil {
				return err
			}

			if expectedVersion >= 0 && current != expectedVersion {
				return ErrVersionConflict
			}
			next = current + 1

			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.HSet(ctx, k,
					"value", value,
					"version", next,
					"updatedAt", s.now().Format(time.RFC3339Nano),
				)
				return nil
			})
			return err
		}, k)

		switch {
		case err == nil:
			return next, nil
		case errors.Is(err, ErrVersionConflict):
			logging.Log.Warnf("KV: version conflict on %s (expected %d)", key, expectedVersion)
			return 0, ErrVersionConflict
		case errors.Is(err, goredis.TxFailedErr):
			if expectedVersion >= 0 {
				return 0, ErrVersionConflict
			}
			continue
		default:
			logging.Log.Errorf("KV: redis put %s failed: %v", key, err)
			return 0, err
		}
	}
	return 0, fmt.Errorf("redis put %s: %w", key, goredis.TxFailedErr)
}

func (s *RedisKeyValueStorage) Delete(ctx context.Context, key string) error {
	if err := s.Client.Del(ctx, s.key(key)).Err(); err != nil {
		logging.Log.Errorf("KV: redis DEL %s failed: %v", key, err)
		return err
	}
	logging.Log.Infof("KV: deleted %s", key)
	return nil
}

// List walks the keyspace with SCAN, so keys written during the walk may
// or may not be returned. SCAN can repeat keys; the result cannot.
func (s *RedisKeyValueStorage) List(ctx context.Context, prefix string) ([]string, error) {
	pattern := globEscaper.Replace(s.key(prefix)) + "*"

	var keys []string
	iter := s.Client.Scan(ctx, 0, pattern, redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.Prefix))
	}
	if err := iter.Err(); err != nil {
		logging.Log.Errorf("KV: redis SCAN %s failed: %v", pattern, err)
		return nil, err
	}
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

func (s *RedisKeyValueStorage) Close() error {
	return s.Client.Close()
}

func (s *RedisKeyValueStorage) key(key string) string {
	return s.Prefix + key
}

func (s *RedisKeyValueStorage) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func entryFromHash(key string, fields map[string]string) (*Entry, error) {
	version, err := strconv.ParseInt(fields["version"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	var updatedAt time.Time
	if raw := fields["updatedAt"]; raw != "" {
		if updatedAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("updatedAt: %w", err)
		}
	}
	return &Entry{
		Key:       key,
		Value:     []byte(fields["value"]),
		Version:   version,
		UpdatedAt: updatedAt,
	}, nil
}
