package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "common.txt")
	content := "password\n123456\n  qwerty  \n\npassword\n\t\nletmein\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	set, err := NewRepository(path).Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		"password": {},
		"123456":   {},
		"qwerty":   {},
		"letmein":  {},
	}, set)
}

func TestLoadMissingFile(t *testing.T) {
	set, err := NewRepository(filepath.Join(t.TempDir(), "nope.txt")).Load()
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.NotNil(t, set)
}

func TestLoadIsCaseSensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "common.txt")
	require.NoError(t, os.WriteFile(path, []byte("Password\n"), 0o600))

	set, err := NewRepository(path).Load()
	require.NoError(t, err)

	_, found := set["password"]
	assert.False(t, found)
	_, found = set["Password"]
	assert.True(t, found)
}
