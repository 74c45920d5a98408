package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/course-graph/pkg/apis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
kind: CatalogBuild
version: v1
metadata:
  name: "Technion"
semestersPath: data/last_semesters.json
terms:
  - code: latest-winter
    path: data/courses_{year}_{sap}.json
  - code: "202402"
    label: "אביב"
    path: data/spring.json
`

func TestYAMLManifestLoader_String_Load(t *testing.T) {
	// Arrange
	loader := NewYAMLManifestLoader(strings.NewReader(validManifest))

	// Act
	m, err := loader.Load(true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, apis.ManifestKind, m.Kind)
	assert.Equal(t, "v1", m.Version)
	assert.Equal(t, "Technion", m.Metadata.Name)
	assert.Equal(t, "data/last_semesters.json", m.SemestersPath)
	require.Len(t, m.Terms, 2)
	assert.Equal(t, apis.LatestWinter, m.Terms[0].Code)
	assert.Equal(t, "data/courses_{year}_{sap}.json", m.Terms[0].Path)
	assert.Equal(t, "אביב", m.Terms[1].Label)
}

func TestYAMLManifestLoader_File_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	m, err := NewYAMLManifestLoader(file).Load(true)

	require.NoError(t, err)
	assert.Len(t, m.Terms, 2)
}

func TestYAMLManifestLoader_Load_ShouldFail(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "wrong kind",
			content: `
kind: DataMapping
version: v1
terms:
  - code: "202401"
    path: a.json
`,
		},
		{
			name: "no terms",
			content: `
kind: CatalogBuild
version: v1
`,
		},
		{
			name: "latest without semester list",
			content: `
kind: CatalogBuild
version: v1
terms:
  - code: latest-spring
    path: a.json
`,
		},
		{
			name: "term without path",
			content: `
kind: CatalogBuild
version: v1
terms:
  - code: "202401"
`,
		},
		{
			name:    "invalid yaml",
			content: "kind: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLManifestLoader(strings.NewReader(tt.content)).Load(true)
			assert.Error(t, err)
		})
	}
}

func TestYAMLManifestLoader_Load_WithoutValidation(t *testing.T) {
	m, err := NewYAMLManifestLoader(strings.NewReader("kind: Other\nversion: v0\n")).Load(false)

	require.NoError(t, err)
	assert.Equal(t, "Other", m.Kind)
	assert.Empty(t, m.Terms)
}
