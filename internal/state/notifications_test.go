package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_SeededWithUnreadCount(t *testing.T) {
	notifs := LoadNotifications(testFiles(t), testLogger())

	require.Len(t, notifs.All(), 6)
	assert.Equal(t, 3, notifs.UnreadCount())
}

func TestNotifications_AddPrependsAndBumpsUnread(t *testing.T) {
	notifs := LoadNotifications(testFiles(t), testLogger())
	before := notifs.UnreadCount()

	item := notifs.Add(NotifyDeal, "Price drop", "Madrid → Rome fell to €59")

	all := notifs.All()
	assert.Equal(t, item.ID, all[0].ID, "new items go to the front")
	assert.Equal(t, before+1, notifs.UnreadCount())
	assert.False(t, all[0].Read)
}

func TestNotifications_MarkReadDecrementsOnce(t *testing.T) {
	notifs := LoadNotifications(testFiles(t), testLogger())
	item := notifs.Add(NotifyAlert, "Check documents", "")
	before := notifs.UnreadCount()

	require.True(t, notifs.MarkRead(item.ID))
	assert.Equal(t, before-1, notifs.UnreadCount())

	// A second mark on an already-read item must not decrement again.
	require.True(t, notifs.MarkRead(item.ID))
	assert.Equal(t, before-1, notifs.UnreadCount())
}

func TestNotifications_MarkAllRead(t *testing.T) {
	notifs := LoadNotifications(testFiles(t), testLogger())

	notifs.MarkAllRead()
	assert.Equal(t, 0, notifs.UnreadCount())
	for _, item := range notifs.All() {
		assert.True(t, item.Read)
	}
}

func TestNotifications_RemoveUnreadAdjustsCounter(t *testing.T) {
	notifs := LoadNotifications(testFiles(t), testLogger())
	item := notifs.Add(NotifyRefund, "Refund update", "")
	before := notifs.UnreadCount()

	require.True(t, notifs.Remove(item.ID))
	assert.Equal(t, before-1, notifs.UnreadCount())
	assert.False(t, notifs.Remove(item.ID), "second remove finds nothing")
}

func TestNotifications_SeedIDsSurviveReload(t *testing.T) {
	files := testFiles(t)

	first := LoadNotifications(files, testLogger())
	seeded := first.All()
	require.NotEmpty(t, seeded)

	second := LoadNotifications(files, testLogger())
	require.True(t, second.MarkRead(seeded[0].ID))
	assert.True(t, second.Remove(seeded[1].ID))
}

func TestNotifications_ClearAll(t *testing.T) {
	notifs := LoadNotifications(testFiles(t), testLogger())

	notifs.ClearAll()
	assert.Empty(t, notifs.All())
	assert.Equal(t, 0, notifs.UnreadCount())
}
