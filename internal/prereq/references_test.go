package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferences(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected []string
	}{
		{name: "empty", node: Empty{}, expected: []string{}},
		{name: "nil", node: nil, expected: []string{}},
		{name: "leaf", node: leaf("01130018"), expected: []string{"01130018"}},
		{
			name: "nested with duplicates",
			node: Or{Children: []Node{
				And{Children: []Node{leaf("01140015"), leaf("01130018")}},
				And{Children: []Node{leaf("01130018"), leaf("01040023")}},
			}},
			expected: []string{"01040023", "01130018", "01140015"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, References(tt.node))
		})
	}
}

func TestCountLeavesAndDepth(t *testing.T) {
	tree := Or{Children: []Node{
		And{Children: []Node{leaf("01140015"), leaf("01130018")}},
		leaf("01130018"),
	}}

	assert.Equal(t, 3, CountLeaves(tree))
	assert.Equal(t, 3, Depth(tree))
	assert.Equal(t, 0, CountLeaves(Empty{}))
	assert.Equal(t, 0, Depth(Empty{}))
	assert.Equal(t, 1, Depth(leaf("01130018")))
}

func TestNewAndNewOr_Collapse(t *testing.T) {
	assert.Equal(t, Empty{}, NewAnd())
	assert.Equal(t, Empty{}, NewOr(nil, Empty{}))
	assert.Equal(t, leaf("01130018"), NewAnd(nil, leaf("01130018"), Empty{}))
	assert.Equal(t,
		Or{Children: []Node{leaf("01130018"), leaf("01140015")}},
		NewOr(leaf("01130018"), nil, leaf("01140015")))
}

func TestClone_IsIndependent(t *testing.T) {
	original := And{Children: []Node{leaf("01130018"), leaf("01140015")}}

	cloned := Clone(original).(And)
	cloned.Children[0] = leaf("99999999")

	assert.Equal(t, leaf("01130018"), original.Children[0])
	assert.True(t, IsEmpty(Clone(nil)))
}
