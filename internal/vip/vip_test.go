package vip

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	in := "42\n  7\nx9\n\n 1001 \n42\n-5\n3.5\n"
	set, err := Load(strings.NewReader(in))
	require.NoError(t, err)

	assert.Len(t, set, 3)
	assert.True(t, set.Contains(42))
	assert.True(t, set.Contains(7))
	assert.True(t, set.Contains(1001))
	assert.False(t, set.Contains(9))
	assert.False(t, set.Contains(-5))
}

func TestLoadEmpty(t *testing.T) {
	set, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vip_customers.txt")
	require.NoError(t, os.WriteFile(path, []byte("5\n6\n"), 0o644))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, set.Contains(5))
	assert.True(t, set.Contains(6))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VIP customer IDs")
}
