package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_TermOrdered(t *testing.T) {
	tests := []struct {
		name     string
		set      Set
		expected []string
	}{
		{name: "empty", set: NewSet(), expected: []string{}},
		{name: "winter before spring", set: NewSet(spring, winter), expected: []string{winter, spring}},
		{name: "summer last", set: NewSet("קיץ", spring, winter), expected: []string{winter, spring, "קיץ"}},
		{name: "unknown labels follow sorted", set: NewSet("b", spring, "a"), expected: []string{spring, "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.TermOrdered())
		})
	}
}

func TestSet_JSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(NewSet("02340114", "01040031"))
	require.NoError(t, err)
	assert.JSONEq(t, `["01040031", "02340114"]`, string(raw))

	var s Set
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.True(t, s.Equal(NewSet("01040031", "02340114")))
}
