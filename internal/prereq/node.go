// Package prereq turns free-text prerequisite descriptions into boolean expression trees.
package prereq

// Node is a prerequisite expression. The set of implementations is closed:
// Leaf, And, Or and Empty.
type Node interface {
	isNode()
}

// Leaf references exactly one course.
type Leaf struct {
	ID string
}

// And requires every child. It always holds at least two children.
type And struct {
	Children []Node
}

// Or requires any child. It always holds at least two children.
type Or struct {
	Children []Node
}

// Empty means no prerequisites.
type Empty struct{}

func (Leaf) isNode()  {}
func (And) isNode()   {}
func (Or) isNode()    {}
func (Empty) isNode() {}

// NewAnd folds children into an And node. Nil children are skipped, a single
// survivor is returned unwrapped and no survivors yield Empty.
func NewAnd(children ...Node) Node {
	kept := compact(children)
	switch len(kept) {
	case 0:
		return Empty{}
	case 1:
		return kept[0]
	default:
		return And{Children: kept}
	}
}

// NewOr folds children into an Or node with the same collapsing rules as NewAnd.
func NewOr(children ...Node) Node {
	kept := compact(children)
	switch len(kept) {
	case 0:
		return Empty{}
	case 1:
		return kept[0]
	default:
		return Or{Children: kept}
	}
}

func compact(children []Node) []Node {
	kept := make([]Node, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if _, ok := c.(Empty); ok {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// IsEmpty reports whether n carries no prerequisites.
func IsEmpty(n Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(Empty)
	return ok
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch v := n.(type) {
	case Leaf:
		return v
	case And:
		return And{Children: cloneAll(v.Children)}
	case Or:
		return Or{Children: cloneAll(v.Children)}
	default:
		return Empty{}
	}
}

func cloneAll(children []Node) []Node {
	out := make([]Node, len(children))
	for i, c := range children {
		out[i] = Clone(c)
	}
	return out
}

// Depth returns the nesting depth of n. Empty has depth 0 and a Leaf depth 1.
func Depth(n Node) int {
	var children []Node
	switch v := n.(type) {
	case Leaf:
		return 1
	case And:
		children = v.Children
	case Or:
		children = v.Children
	default:
		return 0
	}

	deepest := 0
	for _, c := range children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
