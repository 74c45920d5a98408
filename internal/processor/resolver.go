package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/course-graph/internal/collector"
	"github.com/DjordjeVuckovic/course-graph/internal/reader"
	"github.com/DjordjeVuckovic/course-graph/internal/semester"
	"github.com/DjordjeVuckovic/course-graph/pkg/apis"
)

// ResolveTerms turns manifest entries into concrete terms. Relative paths are
// resolved against baseDir.
func ResolveTerms(m *apis.BuildManifest, baseDir string) ([]collector.Term, error) {
	var latestWinter, latestSpring string
	if usesLatest(m) {
		keys, err := loadSemesterKeys(resolvePath(baseDir, m.SemestersPath))
		if err != nil {
			return nil, err
		}
		latestWinter, latestSpring = semester.LatestWinterAndSpring(keys)
	}

	terms := make([]collector.Term, 0, len(m.Terms))
	for i, src := range m.Terms {
		key := src.Code
		switch key {
		case apis.LatestWinter:
			key = latestWinter
		case apis.LatestSpring:
			key = latestSpring
		}
		if src.Code != "" && key == "" {
			return nil, fmt.Errorf("terms[%d]: no semester found for %s", i, src.Code)
		}

		label := src.Label
		if label == "" {
			l, err := semester.Label(key)
			if err != nil {
				return nil, fmt.Errorf("terms[%d]: %w", i, err)
			}
			label = l
		}

		path, err := expandPath(src.Path, key)
		if err != nil {
			return nil, fmt.Errorf("terms[%d]: %w", i, err)
		}

		terms = append(terms, collector.Term{
			Index: i,
			Key:   key,
			Label: label,
			Path:  resolvePath(baseDir, path),
		})
	}
	return terms, nil
}

func usesLatest(m *apis.BuildManifest) bool {
	for _, t := range m.Terms {
		if t.Code == apis.LatestWinter || t.Code == apis.LatestSpring {
			return true
		}
	}
	return false
}

func loadSemesterKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open semester list: %w", err)
	}
	defer f.Close()

	records, err := reader.ReadSemesterRecords(f)
	if err != nil {
		return nil, err
	}

	index := semester.Index(records)
	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	return keys, nil
}

// expandPath fills the {key}, {year} and {sap} placeholders of a term path.
func expandPath(path, key string) (string, error) {
	if !strings.Contains(path, "{") {
		return path, nil
	}
	if key == "" {
		return "", fmt.Errorf("path %q has placeholders but the term has no code", path)
	}

	path = strings.ReplaceAll(path, "{key}", key)
	if strings.Contains(path, "{year}") || strings.Contains(path, "{sap}") {
		year, sap, err := semester.SAPCode(key)
		if err != nil {
			return "", err
		}
		path = strings.ReplaceAll(path, "{year}", year)
		path = strings.ReplaceAll(path, "{sap}", sap)
	}
	return path, nil
}

func resolvePath(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
