package file

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "file")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "exists.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte("hello"), 0644))
	require.True(t, Exists(path))
	require.False(t, Exists(filepath.Join(dir, "bogus.txt")))
	// A directory is not a file.
	require.False(t, Exists(dir))
}
