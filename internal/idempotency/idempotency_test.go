package idempotency

import (
	"context"
	"testing"
	"time"
	"unsafe"
)

func TestMemoryStoreClaimCycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	claimed, _, err := store.Claim(ctx, "draft-1")
	if err != nil || !claimed {
		t.Fatalf("first claim should succeed: %v", err)
	}
	claimed, value, _ := store.Claim(ctx, "draft-1")
	if claimed || value != "" {
		t.Fatalf("in-flight claim should be rejected with empty value, got %v %q", claimed, value)
	}

	if err := store.Complete(ctx, "draft-1", "TKT-20260201-1234"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	claimed, value, _ = store.Claim(ctx, "draft-1")
	if claimed || value != "TKT-20260201-1234" {
		t.Fatalf("replay should return ticket number, got %v %q", claimed, value)
	}

	if err := store.Release(ctx, "draft-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if claimed, _, _ := store.Claim(ctx, "draft-1"); !claimed {
		t.Fatalf("released key should be claimable")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if claimed, _, _ := store.Claim(ctx, "k"); !claimed {
		t.Fatal("expected claim")
	}
	now = now.Add(2 * time.Minute)
	if claimed, _, _ := store.Claim(ctx, "k"); !claimed {
		t.Fatal("expired key should be claimable again")
	}
}

// Fiber hands out header values that alias a pooled buffer; the store must keep its
// own copy of the key once the request has returned.
func TestMemoryStoreKeepsKeyAfterBufferReuse(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	buf := []byte("draft-1")
	key := unsafe.String(&buf[0], len(buf))
	if claimed, _, _ := store.Claim(ctx, key); !claimed {
		t.Fatal("expected claim")
	}
	if err := store.Complete(ctx, key, "TKT-20260201-1234"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	copy(buf, "other-9")

	claimed, value, _ := store.Claim(ctx, "draft-1")
	if claimed || value != "TKT-20260201-1234" {
		t.Fatalf("key lost after buffer reuse: claimed=%v value=%q", claimed, value)
	}
}
