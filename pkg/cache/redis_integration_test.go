//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("LANPARTY_REDIS_ADDR")
	if addr == "" {
		t.Skip("LANPARTY_REDIS_ADDR not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, addr)
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	defer c.Close()

	key := "lanparty:test:" + time.Now().Format(time.RFC3339Nano)
	if _, hit, err := c.Get(ctx, key); hit || err != nil {
		t.Fatalf("Get before Set = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("co,de,ka,ta"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "co,de,ka,ta" {
		t.Fatalf("Get = %q, hit %v, err %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
