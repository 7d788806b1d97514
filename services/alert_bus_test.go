package services

import (
	"testing"

	"freshtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAllergenAlertPersistsAndBroadcasts(t *testing.T) {
	db := newTestDB(t)
	u := newTestUser(t, db, "a@example.com", "peanuts")
	hub := &recordingNotifier{}
	bus := NewAlertBus(db, hub, nil)

	bus.EmitAllergenAlert(u.ID, "Rice Noodles", []string{"peanuts"})

	alerts, err := bus.List(u.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "Rice Noodles")
	assert.Equal(t, []string{"alert.created"}, hub.kinds())
}

func TestEmitStillBroadcastsWhenPersistFails(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Alert{}))
	hub := &recordingNotifier{}
	bus := NewAlertBus(db, hub, nil)

	bus.EmitAllergenAlert(7, "Rice Noodles", []string{"peanuts"})

	assert.Equal(t, []string{"alert.created"}, hub.kinds())
}
