package ports

import (
	"context"

	"loadgo/internal/admin-service/core/domain/models"
)

// IEventsBroker fans committed mutations out to the dashboard feed. Publish
// failures are logged, never surfaced to the caller of the mutation.
type IEventsBroker interface {
	PublishMutation(ctx context.Context, event models.MutationEvent) error
	ConsumeMutations(ctx context.Context) (<-chan models.MutationEvent, error)
	IsAlive() bool
	Close() error
}
