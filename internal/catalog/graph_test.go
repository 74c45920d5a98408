package catalog

import (
	"testing"

	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"github.com/stretchr/testify/assert"
)

func TestBuildGraph(t *testing.T) {
	cat := Catalog{
		"01040031": entry("חדו\"א 1", prereq.Empty{}, winter, spring),
		"01040032": entry("חדו\"א 2", prereq.Leaf{ID: "01040031"}, spring),
		"02340114": entry("מבוא", prereq.Or{Children: []prereq.Node{
			prereq.Leaf{ID: "01040031"},
			prereq.Leaf{ID: "99999999"},
		}}, winter),
	}

	g := BuildGraph(cat)

	assert.Equal(t, []GraphNode{
		{ID: "01040031", Name: "חדו\"א 1", Semesters: []string{winter, spring}},
		{ID: "01040032", Name: "חדו\"א 2", Semesters: []string{spring}},
		{ID: "02340114", Name: "מבוא", Semesters: []string{winter}},
	}, g.Nodes)
	assert.Equal(t, []GraphEdge{
		{ID: "01040031->01040032", Source: "01040031", Target: "01040032"},
		{ID: "01040031->02340114", Source: "01040031", Target: "02340114"},
	}, g.Edges)
}

func TestBuildGraph_Empty(t *testing.T) {
	g := BuildGraph(Catalog{})

	assert.Empty(t, g.Nodes)
	assert.NotNil(t, g.Edges)
}
