package catalog

// Merge unions two catalogs into a new one that shares no entry with either input.
// When a course appears in both, its semesters and prerequisite identifiers are
// unioned and its name and tree are taken from first.
func Merge(first, second Catalog) Catalog {
	merged := first.Clone()

	for id, e := range second {
		existing, ok := merged[id]
		if !ok {
			merged[id] = e.Clone()
			continue
		}
		existing.Semesters = existing.Semesters.Union(e.Semesters)
		existing.Prereqs = existing.Prereqs.Union(e.Prereqs)
	}

	return merged
}

// MergeAll folds Merge over catalogs in order, so earlier catalogs win name and tree.
func MergeAll(catalogs ...Catalog) Catalog {
	merged := make(Catalog)
	for _, c := range catalogs {
		merged = Merge(merged, c)
	}
	return merged
}
