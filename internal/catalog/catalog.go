// Package catalog builds identifier-keyed course tables for one term and merges
// them into a semester-aware catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
)

// Entry is one course of a catalog. For builder output Prereqs always equals
// prereq.References(PrereqTree).
type Entry struct {
	Name       string
	PrereqTree prereq.Node
	Prereqs    Set
	Semesters  Set
}

// entryJSON is the wire shape read by the visualization.
type entryJSON struct {
	Name       string          `json:"name"`
	PrereqTree json.RawMessage `json:"prereqTree"`
	Prereqs    []string        `json:"prereqs"`
	Semesters  []string        `json:"semesters"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	tree, err := prereq.Marshal(e.PrereqTree)
	if err != nil {
		return nil, fmt.Errorf("marshal prerequisite tree: %w", err)
	}
	return json.Marshal(entryJSON{
		Name:       e.Name,
		PrereqTree: tree,
		Prereqs:    e.Prereqs.Sorted(),
		Semesters:  e.Semesters.TermOrdered(),
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var wire entryJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	tree, err := prereq.Decode(wire.PrereqTree)
	if err != nil {
		return fmt.Errorf("course %q: %w", wire.Name, err)
	}

	e.Name = wire.Name
	e.PrereqTree = tree
	e.Prereqs = NewSet(wire.Prereqs...)
	e.Semesters = NewSet(wire.Semesters...)
	return nil
}

// Clone returns a deep copy sharing nothing with e.
func (e *Entry) Clone() *Entry {
	return &Entry{
		Name:       e.Name,
		PrereqTree: prereq.Clone(e.PrereqTree),
		Prereqs:    e.Prereqs.Clone(),
		Semesters:  e.Semesters.Clone(),
	}
}

// Catalog maps a course identifier to its entry.
type Catalog map[string]*Entry

// IDs returns the course identifiers in ascending order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for id, e := range c {
		out[id] = e.Clone()
	}
	return out
}

// InSemester returns a copy holding only the courses offered in the given term.
func (c Catalog) InSemester(label string) Catalog {
	out := make(Catalog)
	for id, e := range c {
		if e.Semesters.Has(label) {
			out[id] = e.Clone()
		}
	}
	return out
}

// Semesters returns every term label used in the catalog, in term order.
func (c Catalog) Semesters() []string {
	labels := NewSet()
	for _, e := range c {
		for label := range e.Semesters {
			labels.Add(label)
		}
	}
	return labels.TermOrdered()
}
