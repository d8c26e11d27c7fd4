package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVMissingFile(t *testing.T) {
	kv, err := OpenKV(filepath.Join(t.TempDir(), "prefs.dat"))
	require.NoError(t, err)

	_, ok := kv.Get(1)
	assert.False(t, ok)
	assert.Empty(t, kv.All())
}

func TestKVSetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.dat")
	kv, err := OpenKV(path)
	require.NoError(t, err)

	require.NoError(t, kv.Set(10, "true"))
	require.NoError(t, kv.Set(20, "false"))
	require.NoError(t, kv.Set(10, "false"))

	v, ok := kv.Get(10)
	require.True(t, ok)
	assert.Equal(t, "false", v)

	reopened, err := OpenKV(path)
	require.NoError(t, err)
	v, ok = reopened.Get(10)
	require.True(t, ok)
	assert.Equal(t, "false", v)
	v, ok = reopened.Get(20)
	require.True(t, ok)
	assert.Equal(t, "false", v)
}

// Only the first colon splits a line, so values may themselves contain
// colons.
func TestKVValueWithColon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.dat")
	kv, err := OpenKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(5, "a:b"))

	reopened, err := OpenKV(path)
	require.NoError(t, err)
	v, ok := reopened.Get(5)
	require.True(t, ok)
	assert.Equal(t, "a:b", v)
}

func TestKVSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.dat")
	content := "1:true\ngarbage\nxyz:false\n2:false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	kv, err := OpenKV(path)
	require.NoError(t, err)
	assert.Len(t, kv.All(), 2)

	v, ok := kv.Get(2)
	require.True(t, ok)
	assert.Equal(t, "false", v)
}
