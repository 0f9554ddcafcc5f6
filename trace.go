package keyset

import (
	"context"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// WithTraceID returns a context carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID returns the trace id stored in ctx, or "".
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// EnsureTraceID returns ctx with a trace id, generating a UUID when none is set.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if id := TraceID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithTraceID(ctx, id), id
}
