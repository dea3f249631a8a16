package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRoster_ReturnsSeedCopies(t *testing.T) {
	repo := NewStaticRosterRepository()
	ctx := context.Background()

	subjects, err := repo.ListSubjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 4)
	assert.Equal(t, "ABH001", subjects[0].ID)

	// Изменение полученного среза не влияет на ростер
	subjects[0].Name = "changed"
	again, err := repo.ListSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", again[0].Name)

	alerts, err := repo.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 4)
	assert.Contains(t, alerts[0].Message, "SOS Alert")
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	state := dashboard.NewState("s-1", models.Coordinates{Lat: 1, Lng: 2}, time.Now())
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, dashboard.OverlayNone, loaded.Overlay)

	// Изменения копии не видны без Save
	loaded.Open(dashboard.OverlayChat)
	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, dashboard.OverlayNone, again.Overlay)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
