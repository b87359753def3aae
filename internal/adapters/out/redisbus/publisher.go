// Package redisbus broadcasts order lifecycle events between application
// instances over Redis pub/sub. Every instance publishes the events its
// command handlers produce and feeds the events it receives into the local
// notification hub, so SSE clients see changes no matter which instance
// committed them.
package redisbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"campuseats/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// Publisher sends order events to a Redis channel.
type Publisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewPublisher creates a publisher for the given Redis channel.
func NewPublisher(client *redis.Client, channel string, logger *slog.Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  logger.With("component", "redisbus"),
	}
}

// Publish marshals the event and sends it to the channel.
// Failures are logged here; callers treat publication as best effort since
// feeds recover by re-querying on the next event.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal order event", "error", err, "order_id", event.OrderID)
		return err
	}

	if err = p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Error("failed to publish order event", "error", err, "order_id", event.OrderID)
		return err
	}

	return nil
}
