package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mindful/store"
)

func TestThemePreference(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mindful.db")

	db, err := store.NewClient(dbPath)
	require.NoError(t, err)

	theme, err := db.Theme()
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	theme, err = db.ThemeOr("forest")
	require.NoError(t, err)
	assert.Equal(t, "forest", theme)

	require.NoError(t, db.SetTheme("ocean"))
	require.NoError(t, db.SetTheme("sunset"))

	require.NoError(t, db.Close())

	db, err = store.NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	theme, err = db.Theme()
	require.NoError(t, err)
	assert.Equal(t, "sunset", theme)

	theme, err = db.ThemeOr("forest")
	require.NoError(t, err)
	assert.Equal(t, "sunset", theme)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mindful.db")

	db, err := store.NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = store.NewClient(dbPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrMindfulRunning))
}
