package catalog

import (
	"encoding/json"
	"sort"

	"github.com/DjordjeVuckovic/course-graph/internal/semester"
)

// Set is an unordered set of strings. It encodes as a sorted JSON array.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Union returns a new set holding the members of both s and other.
func (s Set) Union(other Set) Set {
	out := s.Clone()
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// TermOrdered returns the members as term labels in academic-year order.
// Unknown labels follow, sorted.
func (s Set) TermOrdered() []string {
	items := s.Sorted()
	sort.SliceStable(items, func(i, j int) bool {
		return semester.Rank(items[i]) < semester.Rank(items[j])
	})
	return items
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}
