package platform

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTempFile(t *testing.T) {
	p := NewPlatform()
	dir := t.TempDir()

	path, err := p.WriteTempFile(dir, "key-*", []byte("secret-key"), 0o600)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", string(data))

	require.NoError(t, p.Remove(path))
	assert.True(t, p.IsNotExist(p.Remove(path)))
}

func TestWriteTempFile_BadDir(t *testing.T) {
	p := NewPlatform()
	_, err := p.WriteTempFile("/nonexistent/playrunner", "key-*", nil, 0o600)
	assert.Error(t, err)
}

func TestEnviron(t *testing.T) {
	t.Setenv("PLAYRUNNER_PLATFORM_TEST", "1")
	p := NewPlatform()
	assert.Equal(t, "1", p.Getenv("PLAYRUNNER_PLATFORM_TEST"))
	assert.Contains(t, p.Environ(), "PLAYRUNNER_PLATFORM_TEST=1")
}
