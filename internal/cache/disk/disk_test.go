package disk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return &Store{dir: t.TempDir(), logger: zap.NewNop()}
}

func TestStore_RoundTrip(t *testing.T) {
	s := testStore(t)

	pairs := []models.KeyValuePair{
		{Key: models.StorageKey{0x26, 0xaa}, Value: models.StorageValue{0x01}},
		{Key: models.StorageKey{0x26, 0xbb}, Value: models.StorageValue{}},
	}

	require.NoError(t, s.Store("Kusama,0xabcd,System.bin", pairs))

	got, err := s.Load("Kusama,0xabcd,System.bin")
	require.NoError(t, err)
	assert.Equal(t, pairs, got)
}

func TestStore_Overwrite(t *testing.T) {
	s := testStore(t)

	old := []models.KeyValuePair{{Key: models.StorageKey{0x01}, Value: models.StorageValue{0x01}}}
	require.NoError(t, s.Store("id.bin", old))

	fresh := []models.KeyValuePair{{Key: models.StorageKey{0x02}, Value: models.StorageValue{0x02}}}
	require.NoError(t, s.Store("id.bin", fresh))

	got, err := s.Load("id.bin")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Store("id.bin", []models.KeyValuePair{
		{Key: models.StorageKey{0x01}, Value: models.StorageValue{0x01}},
	}))

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "id.bin", entries[0].Name())
}

func TestLoad_Absent(t *testing.T) {
	s := testStore(t)

	_, err := s.Load("missing.bin")
	require.ErrorIs(t, err, cache.ErrMiss)
	assert.Contains(t, err.Error(), "absent")
}

func TestLoad_Corrupt(t *testing.T) {
	s := testStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "bad.bin"), []byte{0xff, 0xff}, 0o644))

	_, err := s.Load("bad.bin")
	require.ErrorIs(t, err, cache.ErrMiss)
	assert.Contains(t, err.Error(), "decoding")
}

func TestStore_WriteFailure(t *testing.T) {
	s := &Store{dir: filepath.Join(t.TempDir(), "does-not-exist"), logger: zap.NewNop()}

	err := s.Store("id.bin", nil)
	assert.ErrorIs(t, err, cache.ErrWrite)
}
