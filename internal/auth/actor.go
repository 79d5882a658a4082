package auth

import (
	"context"

	"github.com/google/uuid"
)

type actorKey struct{}

// WithActor returns a context carrying the authenticated account id.
func WithActor(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFrom returns the authenticated account id, if any.
func ActorFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
