package listener

import (
	"context"
	"encoding/json"
	"fmt"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/logging"

	goredis "github.com/redis/go-redis/v9"
)

// Enqueuer accepts confirmations for settlement.
type Enqueuer interface {
	Enqueue(c entities.PaymentConfirmation) error
}

// RedisSource feeds paid-invoice events published on a Redis channel into the listener.
//
// Each message is a JSON PaidInvoice. Events for other extensions are ignored.
type RedisSource struct {
	client  goredis.UniversalClient
	channel string
	sink    Enqueuer
	log     logging.Logger
}

func NewRedisSource(client goredis.UniversalClient, channel string, sink Enqueuer, log logging.Logger) *RedisSource {
	if log == nil {
		log = logging.NewLogger()
	}
	return &RedisSource{client: client, channel: channel, sink: sink, log: log}
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Run subscribes and blocks until ctx is cancelled.
func (s *RedisSource) Run(ctx context.Context) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer func() { _ = sub.Close() }()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.channel, err)
	}
	s.log.WithField("channel", s.channel).Info("[listener][redis] subscribed")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.handle(msg.Payload)
		}
	}
}

func (s *RedisSource) handle(payload string) {
	var event PaidInvoice
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.log.WithError(err).Warn("[listener][redis] invalid paid invoice event")
		return
	}
	c, ok := event.ToConfirmation()
	if !ok {
		return
	}
	if err := s.sink.Enqueue(c); err != nil {
		s.log.WithField("attempt_id", c.CorrelationID).WithError(err).Error("[listener][redis] enqueue failed")
	}
}

// Publish emits a paid-invoice event on the channel.
func (s *RedisSource) Publish(ctx context.Context, event PaidInvoice) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.client.Publish(ctx, s.channel, b).Err()
}
