package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New[[]string](nil)

	c.Set("key", []string{"a", "b"}, time.Minute)
	value, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(value) != 2 || value[0] != "a" {
		t.Fatalf("unexpected value: %v", value)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected cache miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New[int](nil)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("key", 42, time.Second)

	if _, ok := c.Get("key"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get("key"); ok {
		t.Fatal("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not removed, len %d", c.Len())
	}
}

func TestCacheZeroTTLStoresNothing(t *testing.T) {
	c := New[int](nil)
	c.Set("key", 1, 0)
	if c.Len() != 0 {
		t.Fatal("zero ttl must not store")
	}
}

func TestCacheCloneIsolation(t *testing.T) {
	clone := func(v []string) []string {
		out := make([]string, len(v))
		copy(out, v)
		return out
	}
	c := New(clone)

	original := []string{"a"}
	c.Set("key", original, time.Minute)
	original[0] = "mutated"

	value, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit")
	}
	if value[0] != "a" {
		t.Fatalf("cached value aliases caller slice: %v", value)
	}

	value[0] = "mutated-too"
	again, _ := c.Get("key")
	if again[0] != "a" {
		t.Fatalf("returned value aliases cached slice: %v", again)
	}
}
