package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/pixelcraft/pkg/ctxmeta"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}

	// Родитель не должен содержать request_id
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithSessionID_IndependentFromRequestID(t *testing.T) {
	ctx := ctxmeta.WithSessionID(context.Background(), "sess-1")
	ctx = ctxmeta.WithRequestID(ctx, "req-1")

	sid, ok := ctxmeta.SessionIDFromContext(ctx)
	if !ok || sid != "sess-1" {
		t.Fatalf("session id: got %q ok=%v", sid, ok)
	}
	rid, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || rid != "req-1" {
		t.Fatalf("request id: got %q ok=%v", rid, ok)
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
	if ctx := ctxmeta.WithSessionID(parent, ""); ctx != parent {
		t.Fatalf("WithSessionID with empty id must return the same ctx")
	}
}

func TestWithRequestID_NilCtx(t *testing.T) {
	var nilCtx context.Context
	if ctx := ctxmeta.WithRequestID(nilCtx, "req-1"); ctx != nil {
		t.Fatalf("WithRequestID(nil, ...) must return nil")
	}
	if id, ok := ctxmeta.SessionIDFromContext(nilCtx); ok || id != "" {
		t.Fatalf("SessionIDFromContext(nil) must be empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	// Даже если ключ верный, пустое значение считаем отсутствующим
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_ForeignKeyDoesNotWork(t *testing.T) {
	type otherKey struct{}
	ctx := context.WithValue(context.Background(), otherKey{}, "req-xyz")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("foreign key must not be recognized, got id=%q ok=%v", id, ok)
	}
}
