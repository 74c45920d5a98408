package prereq

import "sort"

// References returns the distinct course identifiers referenced by n, sorted.
func References(n Node) []string {
	seen := make(map[string]struct{})
	collect(n, seen)

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func collect(n Node, seen map[string]struct{}) {
	switch v := n.(type) {
	case Leaf:
		seen[v.ID] = struct{}{}
	case And:
		for _, c := range v.Children {
			collect(c, seen)
		}
	case Or:
		for _, c := range v.Children {
			collect(c, seen)
		}
	}
}

// CountLeaves returns the number of leaves in n, duplicates included.
func CountLeaves(n Node) int {
	switch v := n.(type) {
	case Leaf:
		return 1
	case And:
		return countAll(v.Children)
	case Or:
		return countAll(v.Children)
	default:
		return 0
	}
}

func countAll(children []Node) int {
	total := 0
	for _, c := range children {
		total += CountLeaves(c)
	}
	return total
}
