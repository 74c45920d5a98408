package apis

import "fmt"

const (
	ManifestKind = "CatalogBuild"

	// Codes resolved against the registrar's semester list at build time.
	LatestWinter = "latest-winter"
	LatestSpring = "latest-spring"
)

// BuildManifest lists the single-term course files merged into one catalog.
// Terms are merged in order, so the first term wins a course's name and tree.
type BuildManifest struct {
	Kind          string       `json:"kind" yaml:"kind"`
	Version       string       `json:"version" yaml:"version"`
	Metadata      Metadata     `json:"metadata" yaml:"metadata"`
	SemestersPath string       `json:"semestersPath,omitempty" yaml:"semestersPath"`
	Terms         []TermSource `json:"terms" yaml:"terms"`
}

type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// TermSource points at one term's course file. Path may use the {key}, {year}
// and {sap} placeholders, filled from Code.
type TermSource struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label,omitempty" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

func (m *BuildManifest) Validate() error {
	if m.Kind != ManifestKind {
		return fmt.Errorf("kind must be %s, got %q", ManifestKind, m.Kind)
	}
	if m.Version == "" {
		return fmt.Errorf("version is required")
	}
	if len(m.Terms) == 0 {
		return fmt.Errorf("at least one term is required")
	}
	for i, t := range m.Terms {
		if t.Path == "" {
			return fmt.Errorf("terms[%d] must have path defined", i)
		}
		if t.Code == "" && t.Label == "" {
			return fmt.Errorf("terms[%d] must have code or label defined", i)
		}
		if (t.Code == LatestWinter || t.Code == LatestSpring) && m.SemestersPath == "" {
			return fmt.Errorf("terms[%d] uses %s but semestersPath is not set", i, t.Code)
		}
	}
	return nil
}
