// ABOUTME: Tests for data migration between storage backends.
// ABOUTME: Covers sqlite-to-file copies, skipping absent keys, and data detection.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateDataSQLiteToFile(t *testing.T) {
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "gym.db"))
	require.NoError(t, err)
	defer src.Close()

	progress := []byte(`{"exercises":{},"prs":{}}`)
	require.NoError(t, src.Put(ProgressKey, progress))

	dst, err := OpenFile(t.TempDir())
	require.NoError(t, err)

	summary, err := MigrateData(src, dst, AllKeys)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Keys)
	assert.Equal(t, len(progress), summary.Bytes)

	got, err := dst.Get(ProgressKey)
	require.NoError(t, err)
	assert.Equal(t, progress, got)

	missing, err := dst.Get(BodyWeightKey)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMigrateDataEmptySource(t *testing.T) {
	summary, err := MigrateData(NewMemoryStore(), NewMemoryStore(), AllKeys)
	require.NoError(t, err)
	assert.Zero(t, summary.Keys)
}

func TestHasData(t *testing.T) {
	s := NewMemoryStore()

	got, err := HasData(s, AllKeys)
	require.NoError(t, err)
	assert.False(t, got)

	require.NoError(t, s.Put(BodyWeightKey, []byte("[]")))
	got, err = HasData(s, AllKeys)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = HasData(s, []string{ProgressKey})
	require.NoError(t, err)
	assert.False(t, got)
}
