package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_SeededOnFirstLoad(t *testing.T) {
	profile := LoadProfile(testFiles(t), testLogger())

	user, ok := profile.User()
	require.True(t, ok)
	assert.Equal(t, "Iker Fernández", user.Name)

	prefs, ok := profile.Preferences()
	require.True(t, ok)
	assert.Equal(t, "EUR", prefs.General.Currency)
}

func TestProfile_SetPreferencesPersists(t *testing.T) {
	files := testFiles(t)
	profile := LoadProfile(files, testLogger())

	prefs, _ := profile.Preferences()
	prefs.General.Currency = "USD"
	profile.SetPreferences(prefs)

	reloaded := LoadProfile(files, testLogger())
	got, ok := reloaded.Preferences()
	require.True(t, ok)
	assert.Equal(t, "USD", got.General.Currency)
}

func TestProfile_ResetRestoresSeed(t *testing.T) {
	profile := LoadProfile(testFiles(t), testLogger())

	prefs, _ := profile.Preferences()
	prefs.General.Currency = "GBP"
	profile.SetPreferences(prefs)

	profile.Reset()
	got, ok := profile.Preferences()
	require.True(t, ok)
	assert.Equal(t, "EUR", got.General.Currency)
}

func TestProfile_LogoutClearsUser(t *testing.T) {
	profile := LoadProfile(testFiles(t), testLogger())

	profile.Logout()
	_, ok := profile.User()
	assert.False(t, ok)
}
