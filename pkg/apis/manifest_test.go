package apis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const manifestYAML = `
kind: CatalogBuild
version: v1
metadata:
  name: Technion
  description: Winter and spring catalogs
semestersPath: data/last_semesters.json
terms:
  - code: latest-winter
    label: חורף
    path: data/courses_{year}_{sap}.json
  - code: "202402"
    path: data/courses_{key}.json
`

func TestBuildManifest_DecodeYAMLAndJSON(t *testing.T) {
	want := BuildManifest{
		Kind:          ManifestKind,
		Version:       "v1",
		Metadata:      Metadata{Name: "Technion", Description: "Winter and spring catalogs"},
		SemestersPath: "data/last_semesters.json",
		Terms: []TermSource{
			{Code: LatestWinter, Label: "חורף", Path: "data/courses_{year}_{sap}.json"},
			{Code: "202402", Path: "data/courses_{key}.json"},
		},
	}

	var fromYAML BuildManifest
	require.NoError(t, yaml.Unmarshal([]byte(manifestYAML), &fromYAML))
	assert.Equal(t, want, fromYAML)
	require.NoError(t, fromYAML.Validate())

	data, err := json.Marshal(want)
	require.NoError(t, err)
	var fromJSON BuildManifest
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, want, fromJSON)
}

func TestBuildManifest_Validate(t *testing.T) {
	valid := func() BuildManifest {
		return BuildManifest{
			Kind:    ManifestKind,
			Version: "v1",
			Terms:   []TermSource{{Code: "202401", Path: "w.json"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(m *BuildManifest)
		errMsg string
	}{
		{name: "valid", mutate: func(m *BuildManifest) {}},
		{name: "wrong kind", mutate: func(m *BuildManifest) { m.Kind = "Pipeline" }, errMsg: "kind must be"},
		{name: "no version", mutate: func(m *BuildManifest) { m.Version = "" }, errMsg: "version is required"},
		{name: "no terms", mutate: func(m *BuildManifest) { m.Terms = nil }, errMsg: "at least one term"},
		{name: "term without path", mutate: func(m *BuildManifest) { m.Terms[0].Path = "" }, errMsg: "must have path"},
		{name: "term without code or label", mutate: func(m *BuildManifest) { m.Terms[0].Code = "" }, errMsg: "code or label"},
		{
			name:   "latest code needs semesters path",
			mutate: func(m *BuildManifest) { m.Terms[0].Code = LatestSpring },
			errMsg: "semestersPath is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(&m)
			err := m.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
