package catalog

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_WireShape(t *testing.T) {
	cat := Catalog{
		"02340114": entry("מבוא", prereq.And{Children: []prereq.Node{
			prereq.Or{Children: []prereq.Node{prereq.Leaf{ID: "01130018"}, prereq.Leaf{ID: "01140015"}}},
			prereq.Leaf{ID: "01040023"},
		}}, winter, spring),
		"01040031": entry("חדו\"א", prereq.Empty{}, winter),
	}

	raw, err := json.Marshal(cat)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"01040031": {"name": "חדו\"א", "prereqTree": null, "prereqs": [], "semesters": ["חורף"]},
		"02340114": {
			"name": "מבוא",
			"prereqTree": {"and": [{"or": ["01130018", "01140015"]}, "01040023"]},
			"prereqs": ["01040023", "01130018", "01140015"],
			"semesters": ["חורף", "אביב"]
		}
	}`, string(raw))

	var decoded Catalog
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, cat, decoded)
}

func TestCatalog_InSemesterAndSemesters(t *testing.T) {
	cat := Catalog{
		"01040031": entry("a", prereq.Empty{}, winter, spring),
		"01040032": entry("b", prereq.Empty{}, spring),
	}

	assert.Equal(t, []string{winter, spring}, cat.Semesters())
	assert.Equal(t, []string{"01040031"}, cat.InSemester(winter).IDs())
	assert.Len(t, cat.InSemester(spring), 2)
	assert.Empty(t, cat.InSemester("קיץ"))
}
