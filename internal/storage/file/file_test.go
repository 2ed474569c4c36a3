package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotel/internal/storage/file"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	lines, err := store.Load(file.RoomsFile)

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_SaveThenLoad(t *testing.T) {
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	records := []string{
		"SIMPLES;101;100.00;false",
		"LUXO;201;200.00;true",
	}

	require.NoError(t, store.Save(file.RoomsFile, records))

	loaded, err := store.Load(file.RoomsFile)

	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestStore_SaveReplacesWholeFile(t *testing.T) {
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(file.GuestsFile, []string{"Ana;111;999", "Bia;222;888"}))
	require.NoError(t, store.Save(file.GuestsFile, []string{"Ana;111;999"}))

	loaded, err := store.Load(file.GuestsFile)

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana;111;999"}, loaded)
}

func TestStore_LoadDropsBlankLines(t *testing.T) {
	dir := t.TempDir()

	store, err := file.New(dir)
	require.NoError(t, err)

	raw := "Ana;111;999\r\n\nBia;222;888\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, file.GuestsFile), []byte(raw), 0o644))

	loaded, err := store.Load(file.GuestsFile)

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana;111;999", "Bia;222;888"}, loaded)
}

func TestNew_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := file.New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
