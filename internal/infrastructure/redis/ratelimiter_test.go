package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func testLimiter(t *testing.T) *FixedWindowLimiter {
	t.Helper()

	mr := miniredis.RunT(t)
	return NewFixedWindowLimiter(New(mr.Addr(), "", 0))
}

func TestAllowFixedWindow_NoRedis_FailsOpen(t *testing.T) {
	t.Parallel()

	l := NewFixedWindowLimiter(nil)
	for i := 0; i < 5; i++ {
		d, err := l.AllowFixedWindow(context.Background(), "k", 1, time.Minute)
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if !d.Allowed {
			t.Fatalf("request %d: expected allowed without redis", i)
		}
	}
}

func TestAllowFixedWindow_CountsAndBlocks(t *testing.T) {
	t.Parallel()

	l := testLimiter(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d, err := l.AllowFixedWindow(ctx, "k", 3, time.Minute)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !d.Allowed {
			t.Fatalf("request %d of 3 should be allowed", i)
		}
		if d.Remaining != 3-i {
			t.Fatalf("request %d: expected remaining=%d, got %d", i, 3-i, d.Remaining)
		}
	}

	d, err := l.AllowFixedWindow(ctx, "k", 3, time.Minute)
	if err != nil {
		t.Fatalf("allow 4: %v", err)
	}
	if d.Allowed {
		t.Fatalf("fourth request should be blocked")
	}
	if d.RetryAfter <= 0 {
		t.Fatalf("expected positive RetryAfter, got %v", d.RetryAfter)
	}
	if d.Remaining != 0 {
		t.Fatalf("expected remaining=0, got %d", d.Remaining)
	}
}

func TestAllowFixedWindow_KeysAreIsolated(t *testing.T) {
	t.Parallel()

	l := testLimiter(t)
	ctx := context.Background()

	if d, _ := l.AllowFixedWindow(ctx, "a", 1, time.Minute); !d.Allowed {
		t.Fatalf("first hit on a should pass")
	}
	if d, _ := l.AllowFixedWindow(ctx, "a", 1, time.Minute); d.Allowed {
		t.Fatalf("second hit on a should block")
	}
	if d, _ := l.AllowFixedWindow(ctx, "b", 1, time.Minute); !d.Allowed {
		t.Fatalf("key b has its own budget")
	}
}

func TestAllowFixedWindow_NonPositiveLimit_Allows(t *testing.T) {
	t.Parallel()

	l := testLimiter(t)
	d, err := l.AllowFixedWindow(context.Background(), "k", 0, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("non-positive limit disables the check")
	}
}
