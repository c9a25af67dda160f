package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexDoc = `settings:
  Cavern Dwellers: 229
monsters:
  ankheg: 231
  cave rat: 232
`

func TestLoadAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte(indexDoc), 0644))

	ix, err := Load(path)
	require.NoError(t, err)

	ref, ok := ix.Setting("Cavern Dwellers")
	require.True(t, ok)
	assert.Equal(t, 229, ref)

	_, ok = ix.Setting("Unknown")
	assert.False(t, ok)
}

func TestMonsterLookupIsCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte(indexDoc), 0644))

	ix, err := Load(path)
	require.NoError(t, err)

	ref, ok := ix.Monster("Cave Rat")
	require.True(t, ok)
	assert.Equal(t, 232, ref)

	_, ok = ix.Monster("Dire Bat")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
