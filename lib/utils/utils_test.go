package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIIf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", IIf(true, "a", "b"))
	assert.Equal(t, "b", IIf(false, "a", "b"))
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Coalesce("", "x", "y"))
	assert.Equal(t, "", Coalesce[string]())
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Clamp(-1, 0, 3))
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, 2, Clamp(2, 0, 3))
}

func TestCycle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Cycle(2, 1, 3))
	assert.Equal(t, 2, Cycle(0, -1, 3))
	assert.Equal(t, 1, Cycle(0, 1, 3))
	assert.Equal(t, 0, Cycle(0, 1, 0))
}

func TestPathAbs(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.Nil(t, err)

	p, err := PathAbs("~/seed.yaml")
	require.Nil(t, err)
	assert.Equal(t, filepath.Join(home, "seed.yaml"), p)

	p, err = PathAbs("seed.yaml")
	require.Nil(t, err)
	assert.True(t, filepath.IsAbs(p))
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.yaml")
	require.Nil(t, os.WriteFile(file, []byte("x"), 0o600))

	ok, err := FileExists(file)
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "b.yaml"))
	assert.Nil(t, err)
	assert.False(t, ok)
}
