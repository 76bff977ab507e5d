package website

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testingfly/website/scaffold"
)

const seedYAML = `
categories:
  - name: Go
    resources:
      - title: A Tour of Go
        url: https://go.dev/tour
        description: Interactive **introduction**.
      - title: Effective Go
        url: https://go.dev/doc/effective_go
  - name: Testing
    resources:
      - title: Draft link
        url: https://draft.example
        draft: true
`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Len(t, seed.Categories, 2)
	assert.Equal(t, "Go", seed.Categories[0].Name)
	assert.Equal(t, "https://go.dev/tour", seed.Categories[0].Resources[0].URL)
	assert.True(t, seed.Categories[1].Resources[0].Draft)
}

func TestParseSeedRejectsMissingURL(t *testing.T) {
	_, err := ParseSeed(strings.NewReader("categories:\n  - name: Go\n    resources:\n      - title: No URL\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Go" resource 1`)
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	_, err := ParseSeed(strings.NewReader("categories:\n  - name: Go\n    links: []\n"))
	assert.Error(t, err)
}

func TestParseSeedEmpty(t *testing.T) {
	seed, err := ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seed.Categories)
}

func TestImportSeed(t *testing.T) {
	s := setupTestStore(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	n, err := ImportSeed(context.Background(), s, seed)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	published, err := s.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A Tour of Go", "Effective Go"}, titles(published))
	assert.Equal(t, 1, published[1].Position)

	all, err := s.ListAllResources(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScaffoldSeedParses(t *testing.T) {
	f, err := scaffold.Templates.Open("templates/resources.yaml.tmpl")
	require.NoError(t, err)
	defer f.Close()

	seed, err := ParseSeed(f)
	require.NoError(t, err)
	require.Len(t, seed.Categories, 2)
	assert.Equal(t, "A Tour of Go", seed.Categories[0].Resources[0].Title)
}
