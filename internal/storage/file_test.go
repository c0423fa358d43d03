package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic_CreatesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uncomp.bin")

	require.NoError(t, WriteAtomic(path, []byte("first output, longer")))
	require.NoError(t, WriteAtomic(path, []byte("second")))

	data, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestWriteAtomic_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, WriteAtomic(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "uncomp.bin")
	assert.Error(t, WriteAtomic(path, []byte("x")))
}

func TestReadAll_Missing(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "chunk2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
