package ctxutil

import (
	"context"
	"testing"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), "firebase-uid-1")

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for non-empty identity")
	}
	if got != "firebase-uid-1" {
		t.Fatalf("expected firebase-uid-1, got %s", got)
	}
}

func TestUserIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty identity, got %q", got)
	}
}

func TestUserIDFromCtx_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), "")

	if _, ok := UserIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for empty identity")
	}
}

func TestUserIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("user_id"), 42)

	got, ok := UserIDFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type")
	}
	if got != "" {
		t.Fatalf("expected empty identity, got %q", got)
	}
}

func TestUserEmailFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithUserEmail(context.Background(), "pat@example.com")
	if got := UserEmailFromCtx(ctx); got != "pat@example.com" {
		t.Fatalf("expected pat@example.com, got %q", got)
	}
	if got := UserEmailFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty email, got %q", got)
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
