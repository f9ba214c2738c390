// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPrefs(t *testing.T, dir string) *Prefs {
	t.Helper()
	prefs, err := OpenPrefs(PrefsPath(dir))
	require.NoError(t, err)
	t.Cleanup(func() { prefs.Close() })
	return prefs
}

func TestPrefs_GetDefault(t *testing.T) {
	prefs := openPrefs(t, t.TempDir())

	v, err := prefs.Get("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

func TestPrefs_SetOverwrites(t *testing.T) {
	prefs := openPrefs(t, t.TempDir())

	require.NoError(t, prefs.Set("k", "one"))
	require.NoError(t, prefs.Set("k", "two"))

	v, err := prefs.Get("k", "")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	all, err := prefs.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "two"}, all)
}

func TestPrefs_PersistAcrossOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	first, err := OpenPrefs(PrefsPath(dir))
	require.NoError(t, err)
	require.NoError(t, first.SetTheme("light"))
	require.NoError(t, first.SetLanguage("kn"))
	require.NoError(t, first.Close())

	second := openPrefs(t, dir)
	assert.Equal(t, "light", second.Theme("auto"))
	assert.Equal(t, "kn", second.Language("en"))
}

func TestPrefs_TypedHelpers(t *testing.T) {
	prefs := openPrefs(t, t.TempDir())

	assert.Equal(t, "auto", prefs.Theme("auto"))
	assert.Equal(t, "en", prefs.Language("en"))
	assert.Equal(t, "", prefs.LastConversation())

	require.NoError(t, prefs.SetLastConversation("abc-123"))
	assert.Equal(t, "abc-123", prefs.LastConversation())

	require.NoError(t, prefs.SetLastConversation(""))
	assert.Equal(t, "", prefs.LastConversation())
}

func TestPrefs_Delete(t *testing.T) {
	prefs := openPrefs(t, t.TempDir())
	require.NoError(t, prefs.Set("k", "v"))
	require.NoError(t, prefs.Delete("k"))
	require.NoError(t, prefs.Delete("never-set"))

	v, err := prefs.Get("k", "gone")
	require.NoError(t, err)
	assert.Equal(t, "gone", v)
}

func TestPrefs_Closed(t *testing.T) {
	prefs, err := OpenPrefs(PrefsPath(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, prefs.Close())
	require.NoError(t, prefs.Close())

	v, err := prefs.Get("k", "def")
	assert.ErrorIs(t, err, ErrPrefsClosed)
	assert.Equal(t, "def", v)
	assert.ErrorIs(t, prefs.Set("k", "v"), ErrPrefsClosed)
	assert.Equal(t, "dark", prefs.Theme("dark"))
}

func TestPrefs_ConcurrentAccess(t *testing.T) {
	prefs := openPrefs(t, t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, prefs.SetTheme("dark"))
		}()
		go func() {
			defer wg.Done()
			prefs.Theme("auto")
		}()
	}
	wg.Wait()

	assert.Equal(t, "dark", prefs.Theme("auto"))
}
