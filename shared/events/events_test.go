package events_test

import (
	"context"
	"errors"
	"lavender/config"
	"lavender/infras/kafka"
	kafkaMocks "lavender/infras/kafka/mocks"
	"lavender/infras/otel/mocks"
	"lavender/shared/events"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := events.NewKafkaPublisher(client, "lavender.records", mocks.NewOtel())

	event := events.NewRecordChanged("Room", events.ActionCreated, "room_1")

	t.Run("sends keyed message", func(t *testing.T) {
		client.EXPECT().
			SendMessages(gomock.Any(), "lavender.records", kafka.Message{Key: "room_1", Value: event}).
			Return(nil)

		assert.NoError(t, publisher.Publish(context.Background(), event))
	})

	t.Run("reports broker failure", func(t *testing.T) {
		client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.Error(t, publisher.Publish(context.Background(), event))
	})
}

func TestNewPublisher_Disabled(t *testing.T) {
	cfg := &config.Config{}

	publisher := events.NewPublisher(cfg, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), events.NewRecordChanged("Room", events.ActionDeleted, "room_1")))
}

func TestKafkaPublisher_CloseWaitsForBackgroundPublishes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := events.NewKafkaPublisher(client, "lavender.records", mocks.NewOtel())
	event := events.NewRecordChanged("Room", events.ActionUpdated, "room_1")

	release := make(chan struct{})
	sent := false

	gomock.InOrder(
		client.EXPECT().
			SendMessages(gomock.Any(), "lavender.records", gomock.Any()).
			DoAndReturn(func(context.Context, string, ...kafka.Message) error {
				<-release
				sent = true

				return nil
			}),
		client.EXPECT().Close().Return(nil),
	)

	events.PublishAsync(ctx, publisher, event)

	closed := make(chan error)

	go func() {
		closed <- publisher.Close(ctx)
	}()

	select {
	case <-closed:
		t.Fatal("publisher closed while a publish was still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)

	require.NoError(t, <-closed)
	assert.True(t, sent)

	// Dropped without reaching kafka.
	events.PublishAsync(ctx, publisher, event)
}

func TestKafkaPublisher_CloseGivesUpWhenContextEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := events.NewKafkaPublisher(client, "lavender.records", mocks.NewOtel())

	release := make(chan struct{})
	defer close(release)

	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, ...kafka.Message) error {
			<-release

			return nil
		}).
		AnyTimes()
	client.EXPECT().Close().Return(nil)

	events.PublishAsync(context.Background(), publisher, events.NewRecordChanged("Room", events.ActionDeleted, "room_1"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.NoError(t, publisher.Close(ctx))
}
