package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for values stored in request contexts.
type ContextKey string

// TraceIDKey is the context key for the per-request trace ID.
const TraceIDKey ContextKey = "traceID"

// SetTraceID attaches a fresh trace ID to the context. Trace IDs
// correlate log lines and error responses belonging to one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context, or the empty
// string when none was set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
