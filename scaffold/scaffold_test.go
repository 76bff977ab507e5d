package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	res, err := Write(dir, Data{SiteName: "Testingfly", SiteURL: "https://testingfly.dev"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, ".env.example"),
		filepath.Join(dir, "resources.yaml"),
	}, res.Created)
	assert.Empty(t, res.Skipped)

	env, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Contains(t, string(env), "SITE_NAME=Testingfly\n")
	assert.Contains(t, string(env), "SITE_URL=https://testingfly.dev\n")
}

func TestWriteKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"), []byte("mine"), 0o644))

	res, err := Write(dir, Data{SiteName: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, ".env.example")}, res.Skipped)
	assert.Equal(t, []string{filepath.Join(dir, "resources.yaml")}, res.Created)

	got, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(got))
	assert.FileExists(t, filepath.Join(dir, "resources.yaml"))
}
