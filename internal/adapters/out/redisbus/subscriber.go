package redisbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"campuseats/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// Subscriber receives order events from a Redis channel and hands them to a
// callback, typically the notification hub's Notify.
type Subscriber struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewSubscriber creates a subscriber for the given Redis channel.
func NewSubscriber(client *redis.Client, channel string, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		client:  client,
		channel: channel,
		logger:  logger.With("component", "redisbus"),
	}
}

// Run subscribes to the channel and invokes handle for each decoded event
// until the context is canceled. Malformed payloads are logged and skipped;
// go-redis reconnects the subscription itself on connection loss.
func (s *Subscriber) Run(ctx context.Context, handle func(ports.OrderChangedEvent)) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	s.logger.Info("subscribed to order events", "channel", s.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var event ports.OrderChangedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.logger.Warn("dropping malformed order event", "error", err)
				continue
			}

			handle(event)
		}
	}
}
