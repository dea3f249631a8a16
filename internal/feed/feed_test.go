package feed

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFeed_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := NewStaticFeed().Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "static feed must not emit updates")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}
}

func TestDecodeUpdate(t *testing.T) {
	update, err := decodeUpdate([]byte(`{"subject":{"id":"ABH002","name":"Sarah Johnson","status":"high-risk","safety_score":40},"received_at":"2026-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, "ABH002", update.Subject.ID)
	assert.Equal(t, models.StatusHighRisk, update.Subject.Status)
	assert.Equal(t, 40, update.Subject.SafetyScore)

	_, err = decodeUpdate([]byte(`{"subject":{}}`))
	assert.ErrorContains(t, err, "without id")

	_, err = decodeUpdate([]byte(`not json`))
	assert.Error(t, err)
}

func newTestRedisFeed(t *testing.T) (*miniredis.Miniredis, *RedisFeed) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return mr, NewRedisFeed(client, logger)
}

func TestRedisFeed_SkipsMalformedUpdates(t *testing.T) {
	mr, f := newTestRedisFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := f.Subscribe(ctx)
	require.NoError(t, err)

	mr.Publish(SubjectUpdatesChannel, `not json`)
	mr.Publish(SubjectUpdatesChannel, `{"subject":{"name":"no id"}}`)
	mr.Publish(SubjectUpdatesChannel, `{"subject":{"id":"ABH004","name":"Emma Davis","status":"caution","safety_score":70}}`)

	select {
	case update := <-ch:
		assert.Equal(t, "ABH004", update.Subject.ID)
		assert.Equal(t, models.StatusCaution, update.Subject.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("valid update was not delivered")
	}
}

func TestRedisFeed_ClosesOnCancel(t *testing.T) {
	_, f := newTestRedisFeed(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := f.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed")
	}
}
