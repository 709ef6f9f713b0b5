package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestRequestID_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSessionID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithSessionID(context.Background(), "sess-9")
	got, ok := SessionIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for stored session id")
	}
	if got != "sess-9" {
		t.Fatalf("expected sess-9, got %q", got)
	}
}

func TestSessionID_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := SessionIDFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestSessionID_EmptyValue(t *testing.T) {
	t.Parallel()

	ctx := WithSessionID(context.Background(), "")
	if _, ok := SessionIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for empty session id")
	}
}
