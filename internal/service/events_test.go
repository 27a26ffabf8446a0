package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type capturedPublish struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	published []capturedPublish
	err       error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, capturedPublish{subject: subject, data: data})
	return nil
}

func TestChangeNotifierPublishesToRedisAndNATS(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, "student-progress:changes")
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	publisher := &fakePublisher{}
	notifier := NewChangeNotifier(client, publisher, "student-progress", zerolog.Nop())
	notifier.Notify(ctx, EntityStudent, ActionCreated, 7)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var event ChangeEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
	require.Equal(t, EntityStudent, event.Entity)
	require.Equal(t, ActionCreated, event.Action)
	require.Equal(t, uint(7), event.ID)
	require.NotEmpty(t, event.Source)
	require.False(t, event.OccurredAt.IsZero())

	require.Len(t, publisher.published, 1)
	require.Equal(t, "student-progress.changes", publisher.published[0].subject)
	require.JSONEq(t, msg.Payload, string(publisher.published[0].data))
}

func TestChangeNotifierSwallowsPublishFailures(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	publisher := &fakePublisher{err: errors.New("nats: connection closed")}
	notifier := NewChangeNotifier(client, publisher, "student-progress", zerolog.Nop())

	require.NotPanics(t, func() {
		notifier.Notify(context.Background(), EntityCourse, ActionCreated, 1)
	})
}

func TestChangeNotifierWithoutTransports(t *testing.T) {
	notifier := NewChangeNotifier(nil, nil, "student-progress", zerolog.Nop())
	require.NotPanics(t, func() {
		notifier.Notify(context.Background(), EntityProgress, ActionUpdated, 3)
	})
	require.IsType(t, nopNotifier{}, notifierOrNop(nil))
}
