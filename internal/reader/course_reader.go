package reader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/course-graph/internal/domain"
	"github.com/DjordjeVuckovic/course-graph/internal/semester"
)

// CourseReader decodes one term's course file: a JSON array of course records.
type CourseReader struct {
	reader io.Reader
}

func NewCourseReader(reader io.Reader) *CourseReader {
	return &CourseReader{
		reader: reader,
	}
}

func (cr *CourseReader) ReadAll() ([]domain.RawCourse, error) {
	var courses []domain.RawCourse
	if err := json.NewDecoder(cr.reader).Decode(&courses); err != nil {
		return nil, fmt.Errorf("failed to decode course file: %w", err)
	}
	return courses, nil
}

// ReadSemesterRecords decodes the registrar's list of recent semesters.
func ReadSemesterRecords(r io.Reader) ([]semester.Record, error) {
	var records []semester.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode semester list: %w", err)
	}
	return records, nil
}
