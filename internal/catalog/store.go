package catalog

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

const keyPrefix = "fitsync:catalog:"

var ErrNotCached = errors.New("not cached")

// Entry is a cached API payload together with the time it was fetched.
// Entries outlive their TTL so a stale copy can be served when the API is down.
type Entry struct {
	Payload   []byte
	FetchedAt time.Time
}

type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, entry Entry) error
	Clear(ctx context.Context) error
}

// entries are stored as an 8 byte big endian unix nano timestamp followed by the payload
func encodeEntry(e Entry) []byte {
	buf := make([]byte, 8+len(e.Payload))
	binary.BigEndian.PutUint64(buf, uint64(e.FetchedAt.UnixNano()))
	copy(buf[8:], e.Payload)
	return buf
}

func decodeEntry(raw []byte) (Entry, error) {
	if len(raw) < 8 {
		return Entry{}, fmt.Errorf("cache entry too short: %d bytes", len(raw))
	}
	return Entry{
		FetchedAt: time.Unix(0, int64(binary.BigEndian.Uint64(raw[:8]))),
		Payload:   raw[8:],
	}, nil
}

// FreecacheStore keeps entries in process memory.
type FreecacheStore struct {
	cache     *freecache.Cache
	retention time.Duration
}

func NewFreecacheStore(sizeMB int, retention time.Duration) *FreecacheStore {
	megabyte := 1024 * 1024
	return &FreecacheStore{
		cache:     freecache.NewCache(sizeMB * megabyte),
		retention: retention,
	}
}

func (s *FreecacheStore) Get(_ context.Context, key string) (Entry, error) {
	raw, err := s.cache.Get([]byte(keyPrefix + key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return Entry{}, ErrNotCached
		}
		return Entry{}, err
	}
	return decodeEntry(raw)
}

func (s *FreecacheStore) Set(_ context.Context, key string, entry Entry) error {
	return s.cache.Set([]byte(keyPrefix+key), encodeEntry(entry), int(s.retention.Seconds()))
}

func (s *FreecacheStore) Clear(_ context.Context) error {
	s.cache.Clear()
	return nil
}

// RedisStore shares the catalog between engine processes.
type RedisStore struct {
	rdb       *redis.Client
	retention time.Duration
}

func NewRedisStore(rdb *redis.Client, retention time.Duration) *RedisStore {
	return &RedisStore{
		rdb:       rdb,
		retention: retention,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, ErrNotCached
		}
		return Entry{}, fmt.Errorf("redis get: %w", err)
	}
	return decodeEntry(raw)
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry) error {
	if err := s.rdb.Set(ctx, keyPrefix+key, encodeEntry(entry), s.retention).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	keys, err := s.rdb.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("redis keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
