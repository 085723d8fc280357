package argfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/flavor/go/substrate/internal/cachedir"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.args")
	args := []string{"-cp", "/opt/app/lib a.jar", "--no-fallback", "-H:Class=com.example.Main"}

	require.NoError(t, Write(path, args))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "-cp\n\"/opt/app/lib a.jar\"\n--no-fallback\n-H:Class=com.example.Main\n", string(data))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, args, got)
}

func TestWrite_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.args")
	require.NoError(t, Write(path, []string{"first", "second", "third"}))
	require.NoError(t, Write(path, []string{"only"}))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got)
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.args"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.args")
	require.NoError(t, os.WriteFile(bad, []byte(`"unterminated`), 0o600))
	_, err = Read(bad)
	assert.ErrorIs(t, err, ErrUnclosedQuote)
}

func TestDefaultPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv(cachedir.EnvCacheDir, root)

	path, err := DefaultPath("0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "args", "0123456789abcdef.args"), path)
	assert.True(t, strings.HasSuffix(path, Extension))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
