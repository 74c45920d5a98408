package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{name: "nil", node: nil, expected: `null`},
		{name: "empty", node: Empty{}, expected: `null`},
		{name: "leaf", node: leaf("01130018"), expected: `"01130018"`},
		{
			name: "nested",
			node: And{Children: []Node{
				Or{Children: []Node{leaf("01130018"), leaf("01140015")}},
				leaf("01040023"),
			}},
			expected: `{"and":[{"or":["01130018","01140015"]},"01040023"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Marshal(tt.node)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(raw))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("nested groups", func(t *testing.T) {
		node, err := Decode([]byte(`{"and":[{"or":["01130018","01140015"]},"01040023"]}`))
		require.NoError(t, err)
		assert.Equal(t, And{Children: []Node{
			Or{Children: []Node{leaf("01130018"), leaf("01140015")}},
			leaf("01040023"),
		}}, node)
	})

	t.Run("null is empty", func(t *testing.T) {
		node, err := Decode([]byte(` null `))
		require.NoError(t, err)
		assert.Equal(t, Empty{}, node)
	})

	t.Run("unary group collapses", func(t *testing.T) {
		node, err := Decode([]byte(`{"or":["01130018"]}`))
		require.NoError(t, err)
		assert.Equal(t, leaf("01130018"), node)
	})

	t.Run("bare array is and", func(t *testing.T) {
		node, err := Decode([]byte(`["01130018","01140015"]`))
		require.NoError(t, err)
		assert.Equal(t, And{Children: []Node{leaf("01130018"), leaf("01140015")}}, node)
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := Decode([]byte(`{"xor":["01130018","01140015"]}`))
		assert.Error(t, err)
	})

	t.Run("two operators", func(t *testing.T) {
		_, err := Decode([]byte(`{"and":[],"or":[]}`))
		assert.Error(t, err)
	})

	t.Run("number", func(t *testing.T) {
		_, err := Decode([]byte(`42`))
		assert.Error(t, err)
	})
}
