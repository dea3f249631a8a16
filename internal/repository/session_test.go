package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedis поднимает встроенный Redis и клиент к нему
func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisSessionStore_MissingSession(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisSessionStore(client, time.Hour)

	state, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, service.ErrSessionNotFound)
	assert.Nil(t, state)
}

func TestRedisSessionStore_SaveGetDelete(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisSessionStore(client, 12*time.Hour)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := dashboard.NewState("s-1", models.Coordinates{Lat: 28.6139, Lng: 77.209}, now)
	state.SetFilter(dashboard.FilterSoloFlag)
	state.SubmitSearch("Red Fort")

	require.NoError(t, store.Save(ctx, state))
	assert.Equal(t, 12*time.Hour, mr.TTL(sessionKey("s-1")))

	loaded, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisSessionStore_ExpiredSessionIsNotFound(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisSessionStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, dashboard.NewState("s-1", models.Coordinates{}, time.Now())))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisSessionStore_CorruptPayload(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisSessionStore(client, time.Hour)
	require.NoError(t, mr.Set(sessionKey("s-1"), "not json"))

	_, err := store.Get(context.Background(), "s-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrSessionNotFound)
}
