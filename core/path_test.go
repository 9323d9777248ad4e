package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

func chainABC(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges([]core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})
	require.NoError(t, err)

	return g
}

func TestPath_Accessors(t *testing.T) {
	p := core.Path{"A", "B", "C"}
	assert.Equal(t, "A", p.Start())
	assert.Equal(t, "C", p.Goal())
	assert.Equal(t, 2, p.Hops())
	assert.Equal(t, "A -> B -> C", p.String())

	var empty core.Path
	assert.Equal(t, "", empty.Start())
	assert.Equal(t, "", empty.Goal())
	assert.Equal(t, 0, empty.Hops())
	assert.Nil(t, empty.Clone())

	c := p.Clone()
	c[0] = "Z"
	assert.Equal(t, "A", p[0])
}

func TestPath_Validate(t *testing.T) {
	g := chainABC(t)

	tests := []struct {
		name        string
		path        core.Path
		start, goal string
		wantErr     bool
	}{
		{"valid", core.Path{"A", "B", "C"}, "A", "C", false},
		{"single node", core.Path{"A"}, "A", "A", false},
		{"empty", nil, "A", "C", true},
		{"wrong start", core.Path{"B", "C"}, "A", "C", true},
		{"wrong goal", core.Path{"A", "B"}, "A", "C", true},
		{"not adjacent", core.Path{"A", "C"}, "A", "C", true},
		{"loop back to start", core.Path{"A", "B", "A"}, "A", "A", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.path.Validate(g, tc.start, tc.goal)
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
