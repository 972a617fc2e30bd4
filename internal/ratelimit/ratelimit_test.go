package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("GEOROOM_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available, skipping integration test")
	}
	return client
}

func TestNoopAllowsEverything(t *testing.T) {
	var l Noop
	for i := 0; i < 1000; i++ {
		res, err := l.Allow(context.Background(), "u")
		if err != nil || !res.Allowed {
			t.Fatalf("noop must allow: %+v %v", res, err)
		}
	}
}

func TestSlidingWindow_Allow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	prefix := "test:georoom:send:" + uuid.NewString() + ":"
	t.Cleanup(func() { client.Del(ctx, prefix+"u1", prefix+"u1:counter", prefix+"u2", prefix+"u2:counter") })

	l := NewSlidingWindow(client, Config{Limit: 3, Window: time.Minute}, prefix)

	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "u1")
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if !res.Allowed {
			t.Fatalf("request %d must be allowed", i+1)
		}
		if res.Remaining != 3-i-1 {
			t.Fatalf("remaining = %d, want %d", res.Remaining, 3-i-1)
		}
	}

	res, err := l.Allow(ctx, "u1")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if res.Allowed {
		t.Fatal("4th request must be denied")
	}
	if res.RetryAfter <= 0 || res.RetryAfter > time.Minute {
		t.Fatalf("RetryAfter = %v", res.RetryAfter)
	}

	res, err = l.Allow(ctx, "u2")
	if err != nil || !res.Allowed {
		t.Fatalf("other key must have its own window: %+v %v", res, err)
	}
}

func TestSlidingWindow_WindowSlides(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	prefix := "test:georoom:slide:" + uuid.NewString() + ":"
	t.Cleanup(func() { client.Del(ctx, prefix+"u", prefix+"u:counter") })

	now := time.Now()
	l := NewSlidingWindow(client, Config{Limit: 1, Window: 10 * time.Second}, prefix)
	l.now = func() time.Time { return now }

	if res, _ := l.Allow(ctx, "u"); !res.Allowed {
		t.Fatal("first request must be allowed")
	}
	if res, _ := l.Allow(ctx, "u"); res.Allowed {
		t.Fatal("second request inside window must be denied")
	}

	now = now.Add(11 * time.Second)
	if res, err := l.Allow(ctx, "u"); err != nil || !res.Allowed {
		t.Fatalf("request after window must be allowed: %+v %v", res, err)
	}
}
