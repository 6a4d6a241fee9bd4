package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestVersion(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "air"
version = "0.35.1"
edition = "2021"

[dependencies]
serde = "1.0"
`)

	v, err := Version(path)
	require.NoError(t, err)
	assert.Equal(t, "0.35.1", v)
}

func TestVersionMissingField(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "air"
`)

	_, err := Version(path)
	require.Error(t, err)

	var missing *MissingVersionError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Path)
}

func TestVersionMissingFile(t *testing.T) {
	_, err := Version(filepath.Join(t.TempDir(), "Cargo.toml"))
	assert.Error(t, err)
}

func TestVersionMalformedManifest(t *testing.T) {
	path := writeManifest(t, `[package`)

	_, err := Version(path)
	assert.Error(t, err)
}
