package domain

import (
	"encoding/json"
	"strings"
)

// Keys of the "general" block in the source course files. The English aliases
// are accepted for hand-written fixtures.
var (
	courseNumberKeys = []string{"מספר מקצוע", "course-number"}
	courseNameKeys   = []string{"שם מקצוע", "course-name"}
	prerequisiteKeys = []string{"מקצועות קדם", "prerequisites"}
)

// RawCourse is one course record of a single-term source file. Only the
// identity and prerequisite fields are read, everything else is ignored.
type RawCourse struct {
	General CourseGeneral `json:"general"`
}

type CourseGeneral struct {
	Number        string `json:"course-number"`
	Name          string `json:"course-name"`
	Prerequisites string `json:"prerequisites,omitempty"`
}

func (g *CourseGeneral) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	g.Number = lookupString(fields, courseNumberKeys)
	g.Name = lookupString(fields, courseNameKeys)
	g.Prerequisites = lookupString(fields, prerequisiteKeys)
	return nil
}

// HasIdentity reports whether the record carries both a course number and a name.
func (r RawCourse) HasIdentity() bool {
	return r.General.Number != "" && r.General.Name != ""
}

// lookupString returns the first key holding a string value. Non-string values count as absent.
func lookupString(fields map[string]json.RawMessage, keys []string) string {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
