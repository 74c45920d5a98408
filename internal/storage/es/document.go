package es

import (
	"time"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// CourseDocument is one catalog entry as indexed in Elasticsearch. The tree is kept
// as its JSON text because leaves, groups and null do not share one mapping.
type CourseDocument struct {
	CourseID   string    `json:"course_id"`
	Name       string    `json:"name"`
	PrereqTree string    `json:"prereq_tree"`
	Prereqs    []string  `json:"prereqs"`
	Semesters  []string  `json:"semesters"`
	SnapshotID string    `json:"snapshot_id"`
	IndexedAt  time.Time `json:"indexed_at"`
}

type IndexBuilder struct {
	nameAnalyzer string
}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		nameAnalyzer: "course_name_analyzer",
	}
}

func (b *IndexBuilder) mapToESDocument(courseID string, e *catalog.Entry, snapshot uuid.UUID) (CourseDocument, error) {
	tree, err := prereq.Marshal(e.PrereqTree)
	if err != nil {
		return CourseDocument{}, err
	}
	return CourseDocument{
		CourseID:   courseID,
		Name:       e.Name,
		PrereqTree: string(tree),
		Prereqs:    e.Prereqs.Sorted(),
		Semesters:  e.Semesters.Sorted(),
		SnapshotID: snapshot.String(),
		IndexedAt:  time.Now(),
	}, nil
}

func (b *IndexBuilder) mapToEntry(doc CourseDocument) (*catalog.Entry, error) {
	tree, err := prereq.Decode([]byte(doc.PrereqTree))
	if err != nil {
		return nil, err
	}
	return &catalog.Entry{
		Name:       doc.Name,
		PrereqTree: tree,
		Prereqs:    catalog.NewSet(doc.Prereqs...),
		Semesters:  catalog.NewSet(doc.Semesters...),
	}, nil
}

func (b *IndexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				b.nameAnalyzer: types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}
}

func (b *IndexBuilder) buildMapping() types.TypeMapping {
	stored := false
	treeProp := types.NewKeywordProperty()
	treeProp.Index = &stored
	treeProp.DocValues = &stored

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"course_id":   types.NewKeywordProperty(),
			"name":        b.createTextPropertyWithKeyword(b.nameAnalyzer),
			"prereq_tree": treeProp,
			"prereqs":     types.NewKeywordProperty(),
			"semesters":   types.NewKeywordProperty(),
			"snapshot_id": types.NewKeywordProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
