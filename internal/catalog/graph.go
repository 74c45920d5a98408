package catalog

import "sort"

type GraphNode struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Semesters []string `json:"semesters"`
}

type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// BuildGraph projects the catalog into prerequisite edges. An edge runs from a
// prerequisite to the course requiring it and exists only when both courses are
// in the catalog.
func BuildGraph(c Catalog) Graph {
	g := Graph{
		Nodes: make([]GraphNode, 0, len(c)),
		Edges: []GraphEdge{},
	}

	for _, id := range c.IDs() {
		e := c[id]
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Name: e.Name, Semesters: e.Semesters.TermOrdered()})

		for _, pre := range e.Prereqs.Sorted() {
			if _, ok := c[pre]; !ok {
				continue
			}
			g.Edges = append(g.Edges, GraphEdge{ID: pre + "->" + id, Source: pre, Target: id})
		}
	}

	sort.Slice(g.Edges, func(i, j int) bool { return g.Edges[i].ID < g.Edges[j].ID })
	return g
}
