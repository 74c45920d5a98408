package reader

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/course-graph/internal/semester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseReader_ReadAll(t *testing.T) {
	input := `[
		{"general": {"מספר מקצוע": "02340114", "שם מקצוע": "מבוא למדעי המחשב", "מקצועות קדם": "01040031"}, "schedule": []},
		{"general": {"course-number": "01040031", "course-name": "Calculus"}}
	]`

	courses, err := NewCourseReader(strings.NewReader(input)).ReadAll()

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "02340114", courses[0].General.Number)
	assert.Equal(t, "01040031", courses[0].General.Prerequisites)
	assert.Equal(t, "Calculus", courses[1].General.Name)
	assert.Empty(t, courses[1].General.Prerequisites)
}

func TestCourseReader_ReadAll_Invalid(t *testing.T) {
	_, err := NewCourseReader(strings.NewReader(`{"general": {}}`)).ReadAll()
	assert.Error(t, err)
}

func TestReadSemesterRecords(t *testing.T) {
	input := `[{"year": 2024, "semester": 200, "start": "2024-10-20", "end": "2025-02-01"}]`

	records, err := ReadSemesterRecords(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []semester.Record{{Year: 2024, Semester: 200, Start: "2024-10-20", End: "2025-02-01"}}, records)
}
