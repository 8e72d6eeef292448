package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) = hit %v, err %v; want miss", hit, err)
	}

	if err := c.Set(ctx, "report:a", []byte(`{"largest_clique":"co,de,ka,ta"}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "report:a")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v; want hit", hit, err)
	}
	if !strings.Contains(string(data), "co,de,ka,ta") {
		t.Errorf("Get data = %s", data)
	}

	if err := c.Delete(ctx, "report:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "report:a"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "report:a"); err != nil {
		t.Errorf("Delete of missing key should not fail: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v; want silent miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for i := range 5 {
		if err := c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 5 {
		t.Errorf("Clear removed %d entries, want 5", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir should be empty, has %d entries", len(entries))
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.ReportKey("hash123", ReportKeyOpts{Prefix: "t", Driver: "per-node"})
	k2 := k.ReportKey("hash123", ReportKeyOpts{Prefix: "t", Driver: "per-node"})
	if k1 != k2 {
		t.Error("ReportKey should be deterministic")
	}
	if !strings.HasPrefix(k1, "report:") {
		t.Errorf("ReportKey should be namespaced: %s", k1)
	}

	if k1 == k.ReportKey("hash123", ReportKeyOpts{Prefix: "k", Driver: "per-node"}) {
		t.Error("Different prefixes should produce different keys")
	}
	if k1 == k.ReportKey("hash123", ReportKeyOpts{Prefix: "t", Driver: "single"}) {
		t.Error("Different drivers should produce different keys")
	}
	if k1 == k.ReportKey("hash456", ReportKeyOpts{Prefix: "t", Driver: "per-node"}) {
		t.Error("Different graphs should produce different keys")
	}

	svg := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(svg, "artifact:") {
		t.Errorf("ArtifactKey should be namespaced: %s", svg)
	}
	for name, opts := range map[string]ArtifactKeyOpts{
		"format":    {Format: "dot"},
		"highlight": {Format: "svg", Highlight: "co,de,ka,ta"},
		"mark":      {Format: "svg", MarkPrefix: "t"},
		"title":     {Format: "svg", Title: "LAN"},
	} {
		if svg == k.ArtifactKey("hash123", opts) {
			t.Errorf("a different %s should produce a different key", name)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "api:")

	opts := ReportKeyOpts{Prefix: "t"}
	if got, want := scoped.ReportKey("h", opts), "api:"+inner.ReportKey("h", opts); got != want {
		t.Errorf("ScopedKeyer ReportKey = %s, want %s", got, want)
	}
	aopts := ArtifactKeyOpts{Format: "svg"}
	if got, want := scoped.ArtifactKey("h", aopts), "api:"+inner.ArtifactKey("h", aopts); got != want {
		t.Errorf("ScopedKeyer ArtifactKey = %s, want %s", got, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ReportKey("h", ReportKeyOpts{})
	if !strings.HasPrefix(key, "prefix:report:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrCorruptEntry) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestDecodeEntry(t *testing.T) {
	var v struct{ N int }
	if err := DecodeEntry([]byte(`{"N":7}`), &v); err != nil || v.N != 7 {
		t.Errorf("DecodeEntry = %v, N = %d", err, v.N)
	}
	err := DecodeEntry([]byte("{not json"), &v)
	if !errors.Is(err, ErrCorruptEntry) {
		t.Errorf("err = %v, want ErrCorruptEntry", err)
	}
	if IsRetryable(err) {
		t.Error("corrupt entries are not retryable")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = old }()

	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err %v, calls %d", err, calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrCorruptEntry
	})
	if err != ErrCorruptEntry || calls != 1 {
		t.Errorf("non-retryable: err %v, calls %d", err, calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err %v, calls %d", err, calls)
	}

	// Gives up after three attempts
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if !errors.Is(err, ErrNetwork) || calls != 3 {
		t.Errorf("exhausted: err %v, calls %d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		addr     string
		wantAddr string
		wantDB   int
		wantErr  bool
	}{
		{addr: "localhost:6379", wantAddr: "localhost:6379"},
		{addr: "redis://cache.internal:6380/2", wantAddr: "cache.internal:6380", wantDB: 2},
		{addr: "", wantErr: true},
	}
	for _, tt := range tests {
		opts, err := redisOptions(tt.addr)
		if tt.wantErr {
			if err == nil {
				t.Errorf("redisOptions(%q) should fail", tt.addr)
			}
			continue
		}
		if err != nil {
			t.Errorf("redisOptions(%q): %v", tt.addr, err)
			continue
		}
		if opts.Addr != tt.wantAddr || opts.DB != tt.wantDB {
			t.Errorf("redisOptions(%q) = %s db %d, want %s db %d", tt.addr, opts.Addr, opts.DB, tt.wantAddr, tt.wantDB)
		}
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	if err := classify(netErr); !IsRetryable(err) || !errors.Is(err, ErrNetwork) {
		t.Errorf("network error should be retryable ErrNetwork: %v", err)
	}
	if IsRetryable(classify(errors.New("WRONGTYPE"))) {
		t.Error("protocol errors should not be retried")
	}
}
