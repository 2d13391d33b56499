package fsh_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumekit/gjf/internal/fsh"
)

// mockEnvProvider is a test implementation of EnvProvider.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	if m.values == nil {
		return ""
	}
	return m.values[key]
}

func TestOSEnvProvider(t *testing.T) {
	t.Parallel()

	t.Run("Get returns environment variable", func(t *testing.T) {
		t.Parallel()
		provider := fsh.NewEnvProvider()

		// PATH should always be set
		path := provider.Get("PATH")
		assert.NotEmpty(t, path)
	})

	t.Run("Get returns empty for unset variable", func(t *testing.T) {
		t.Parallel()
		provider := fsh.NewEnvProvider()

		value := provider.Get("UNLIKELY_TO_BE_SET_12345")
		assert.Empty(t, value)
	})
}

func TestMockEnvProvider(t *testing.T) {
	t.Parallel()

	mock := &mockEnvProvider{values: map[string]string{"GJF_JAVA": "/opt/jdk/bin/java"}}
	assert.Equal(t, "/opt/jdk/bin/java", mock.Get("GJF_JAVA"))
	assert.Empty(t, mock.Get("GJF_JAR_PATH"))
}

func TestStandardPathResolver(t *testing.T) {
	t.Parallel()

	t.Run("CanonicalPath resolves symlinks", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		target := filepath.Join(dir, "target")
		require.NoError(t, os.Mkdir(target, 0o755))

		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(target, link))

		canonical, err := fsh.NewPathResolver().CanonicalPath(link)
		require.NoError(t, err)

		expected, _ := filepath.EvalSymlinks(target)
		assert.Equal(t, expected, canonical)
	})

	t.Run("CanonicalPath errors on missing path", func(t *testing.T) {
		t.Parallel()
		_, err := fsh.NewPathResolver().CanonicalPath(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("Abs returns absolute path", func(t *testing.T) {
		t.Parallel()
		abs, err := fsh.NewPathResolver().Abs("relative/path")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(abs))
	})

	t.Run("ExecutableDir returns an existing directory", func(t *testing.T) {
		t.Parallel()
		dir, err := fsh.NewPathResolver().ExecutableDir()
		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.java")
	require.NoError(t, os.WriteFile(file, []byte("class A {}"), 0o644))

	assert.True(t, fsh.IsFile(file))
	assert.False(t, fsh.IsFile(dir), "directories are not files")
	assert.False(t, fsh.IsFile(filepath.Join(dir, "missing")))
}
