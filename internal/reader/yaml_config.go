package reader

import (
	"io"

	"github.com/DjordjeVuckovic/course-graph/pkg/apis"
	"gopkg.in/yaml.v3"
)

type YAMLManifestLoader struct {
	reader io.Reader
}

func NewYAMLManifestLoader(reader io.Reader) *YAMLManifestLoader {
	return &YAMLManifestLoader{
		reader: reader,
	}
}

func (ml *YAMLManifestLoader) Load(validate bool) (*apis.BuildManifest, error) {
	decoder := yaml.NewDecoder(ml.reader)
	var manifest apis.BuildManifest
	if err := decoder.Decode(&manifest); err != nil {
		return nil, err
	}
	if validate {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
	}
	return &manifest, nil
}
