// Package events announces record changes to other systems.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lavender/config"
	"lavender/infras/kafka"
	"lavender/infras/otel"
	"lavender/shared/constant"
	"lavender/shared/timezone"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// RecordChanged is published after a record has been persisted.
type RecordChanged struct {
	Entity     string    `json:"entity"`
	Action     Action    `json:"action"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewRecordChanged(entity string, action Action, id string) RecordChanged {
	return RecordChanged{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event RecordChanged) error
	// Close waits for background publishes, at most until ctx is done, and releases the connection.
	Close(ctx context.Context) error
}

// tracker is implemented by publishers that wait for background publishes when closed.
type tracker interface {
	track() (done func(), open bool)
}

type kafkaPublisher struct {
	client   kafka.Client
	topic    string
	otel     otel.Otel
	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// NewPublisher returns a kafka backed publisher, or one that drops every event when kafka is disabled.
func NewPublisher(cfg *config.Config, ot otel.Otel) Publisher {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, record change events will not be published")

		return noopPublisher{}
	}

	return NewKafkaPublisher(kafka.New(cfg), cfg.Kafka.Topic, ot)
}

func NewKafkaPublisher(client kafka.Client, topic string, ot otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		topic:  topic,
		otel:   ot,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event RecordChanged) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelEntityAttributeKey: event.Entity,
		constant.OtelRecordAttributeKey: event.ID,
	})

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.ID, Value: event})
	if err != nil {
		return fmt.Errorf("failed to publish %s %s event: %w", event.Entity, event.Action, err)
	}

	return nil
}

func (p *kafkaPublisher) track() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, false
	}

	p.inflight.Add(1)

	return p.inflight.Done, true
}

// Close stops accepting background publishes, waits for the running ones and closes the kafka
// writer, which flushes the messages it still buffers.
func (p *kafkaPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	drained := make(chan struct{})

	go func() {
		p.inflight.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-ctx.Done():
		log.Warn().Msg("Timed out waiting for record change events to be published")
	}

	if err := p.client.Close(); err != nil {
		return fmt.Errorf("failed to close event publisher: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, RecordChanged) error {
	return nil
}

func (noopPublisher) Close(context.Context) error {
	return nil
}

// PublishAsync publishes event in the background. Failures are only logged. Events handed to a
// closed publisher are dropped.
func PublishAsync(ctx context.Context, publisher Publisher, event RecordChanged) {
	done := func() {}

	if t, ok := publisher.(tracker); ok {
		var open bool

		if done, open = t.track(); !open {
			log.Warn().Str("entity", event.Entity).Str("id", event.ID).Msg("publisher closed, record change dropped")

			return
		}
	}

	go func() {
		defer done()

		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Str("entity", event.Entity).Str("id", event.ID).Msg("failed to publish record change")
		}
	}()
}
