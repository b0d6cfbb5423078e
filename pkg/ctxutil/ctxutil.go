package ctxutil

import "context"

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated actor's email in the context.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey, email)
}

// ActorFromCtx extracts the actor email from the context.
// Returns "" and false if the value is missing or empty.
func ActorFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(actorKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
