package persistence

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*RedisStorage)(nil)

// stubRedis keeps values in a map and serves a single SCAN page.
type stubRedis struct {
	redis.UniversalClient
	values map[string][]byte
	ttls   map[string]time.Duration
}

func newStubRedis() *stubRedis {
	return &stubRedis{values: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (s *stubRedis) Get(_ context.Context, key string) *redis.StringCmd {
	val, ok := s.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(val), nil)
}

func (s *stubRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.values[key] = append([]byte(nil), value.([]byte)...)
	s.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *stubRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := s.values[k]; ok {
			delete(s.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (s *stubRedis) Scan(_ context.Context, _ uint64, match string, _ int64) *redis.ScanCmd {
	prefix := strings.TrimSuffix(match, "*")
	var keys []string
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return redis.NewScanCmdResult(keys, 0, nil)
}

func TestRedisStorage(t *testing.T) {
	client := newStubRedis()
	client.values["auth:revoked:jti"] = []byte("1")
	s := NewRedisStorage(client)

	if err := s.Set("10.0.0.1", []byte("3"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if client.ttls[rateLimitKeyPrefix+"10.0.0.1"] != time.Minute {
		t.Fatalf("expected namespaced key with expiry, got %v", client.ttls)
	}
	got, err := s.Get("10.0.0.1")
	if err != nil || !bytes.Equal(got, []byte("3")) {
		t.Fatalf("Get = %q (%v)", got, err)
	}
	if got, err := s.Get("10.0.0.2"); err != nil || got != nil {
		t.Fatalf("missing key should be nil without error, got %q (%v)", got, err)
	}

	if err := s.Set("", []byte("x"), time.Minute); err != nil {
		t.Fatalf("empty key should be ignored: %v", err)
	}
	if err := s.Set("empty", nil, time.Minute); err != nil {
		t.Fatalf("empty value should be ignored: %v", err)
	}
	if _, ok := client.values[rateLimitKeyPrefix+"empty"]; ok {
		t.Fatalf("empty value must not be stored")
	}

	if err := s.Delete("10.0.0.1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := s.Get("10.0.0.1"); got != nil {
		t.Fatalf("deleted key still readable")
	}

	_ = s.Set("a", []byte("1"), time.Minute)
	_ = s.Set("b", []byte("2"), time.Minute)
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	for k := range client.values {
		if strings.HasPrefix(k, rateLimitKeyPrefix) {
			t.Fatalf("limiter key %q survived Reset", k)
		}
	}
	if _, ok := client.values["auth:revoked:jti"]; !ok {
		t.Fatalf("Reset must not touch keys outside the limiter namespace")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
