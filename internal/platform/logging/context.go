package logging

import "context"

type requestIDKey struct{}

// WithRequestID returns a context carrying the request ID so downstream log
// statements can correlate with the X-Request-ID echoed to the client.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, or "" when there is none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
