package redis

import (
	"context"
	"testing"
	"time"

	"github.com/jpbelardo/tindahan-backend/pkg/config"
	redisdriver "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Ping(ctx context.Context) *redisdriver.StatusCmd {
	return redisdriver.NewStatusResult("PONG", nil)
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) *redisdriver.StatusCmd {
	f.values[key] = toString(value)
	return redisdriver.NewStatusResult("OK", nil)
}

func (f *fakeStore) Get(ctx context.Context, key string) *redisdriver.StringCmd {
	if val, ok := f.values[key]; ok {
		return redisdriver.NewStringResult(val, nil)
	}
	return redisdriver.NewStringResult("", redisdriver.Nil)
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) *redisdriver.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			removed++
		}
	}
	return redisdriver.NewIntResult(removed, nil)
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return ""
}

func TestSetGetDel(t *testing.T) {
	t.Parallel()

	client := &Client{store: newFakeStore()}
	ctx := context.Background()

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v" {
		t.Fatalf("expected v, got %q", got)
	}

	if err := client.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := client.Get(ctx, "k"); err != Nil {
		t.Fatalf("expected cache miss after delete, got %v", err)
	}
}

func TestCatalogKeyNamespacing(t *testing.T) {
	t.Parallel()

	client := &Client{}
	if key := client.CatalogKey("snapshot"); key != "tnd:catalog:snapshot" {
		t.Fatalf("unexpected key: %s", key)
	}
	if key := client.CatalogKey("", "snapshot"); key != "tnd:catalog:snapshot" {
		t.Fatalf("empty parts must be skipped: %s", key)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	t.Parallel()

	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when url and address are both empty")
	}

	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", PoolSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr: %s", opts.Addr)
	}
	if opts.PoolSize != 5 {
		t.Fatalf("pool size not applied: %d", opts.PoolSize)
	}
}
