package state

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles(t *testing.T) *Files {
	t.Helper()
	files, err := NewFiles(t.TempDir())
	require.NoError(t, err)
	return files
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFavorites_AddAndContains(t *testing.T) {
	favs := LoadFavorites(testFiles(t), testLogger())

	favs.Add(KindFlight, "fl-001")
	favs.Add(KindStay, "stay-rome-1")

	assert.True(t, favs.Contains(KindFlight, "fl-001"))
	assert.True(t, favs.Contains(KindStay, "stay-rome-1"))
	assert.False(t, favs.Contains(KindFlight, "stay-rome-1"), "kinds keep separate sets")
}

func TestFavorites_AddIsIdempotent(t *testing.T) {
	favs := LoadFavorites(testFiles(t), testLogger())

	favs.Add(KindFlight, "fl-001")
	favs.Add(KindFlight, "fl-001")

	assert.Len(t, favs.FlightIDs(), 1)
}

func TestFavorites_ToggleTwiceRestoresState(t *testing.T) {
	favs := LoadFavorites(testFiles(t), testLogger())

	assert.True(t, favs.Toggle(KindFlight, "fl-007"))
	assert.False(t, favs.Toggle(KindFlight, "fl-007"))
	assert.False(t, favs.Contains(KindFlight, "fl-007"))
	assert.Empty(t, favs.FlightIDs())
}

func TestFavorites_PersistAcrossLoads(t *testing.T) {
	files := testFiles(t)

	first := LoadFavorites(files, testLogger())
	first.Add(KindStay, "stay-bali-3")

	second := LoadFavorites(files, testLogger())
	assert.True(t, second.Contains(KindStay, "stay-bali-3"))
}

func TestFavorites_RemoveMissingIsNoop(t *testing.T) {
	favs := LoadFavorites(testFiles(t), testLogger())

	favs.Remove(KindFlight, "never-added")
	assert.Empty(t, favs.FlightIDs())
}
