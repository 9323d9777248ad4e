package route

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alhammadi/Intro-to-AI/core"
)

func TestPlan_RecordsMetrics(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{{From: "x", To: "y"}})
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("z"))
	p := NewPlanner(g, nil)

	found := searchesTotal.WithLabelValues("bfs", outcomeFound)
	notFound := searchesTotal.WithLabelValues("dfs", outcomeNotFound)
	failed := searchesTotal.WithLabelValues("astar", outcomeError)
	before := [3]float64{testutil.ToFloat64(found), testutil.ToFloat64(notFound), testutil.ToFloat64(failed)}

	_, err = p.Plan(context.Background(), Request{Strategy: BreadthFirst, From: "x", To: "y"})
	require.NoError(t, err)
	_, err = p.Plan(context.Background(), Request{Strategy: DepthFirst, From: "x", To: "z"})
	require.NoError(t, err)
	_, err = p.Plan(context.Background(), Request{Strategy: AStar, From: "x", To: "y"})
	require.ErrorIs(t, err, ErrGeoRequired)

	assert.Equal(t, before[0]+1, testutil.ToFloat64(found))
	assert.Equal(t, before[1]+1, testutil.ToFloat64(notFound))
	assert.Equal(t, before[2]+1, testutil.ToFloat64(failed))
	assert.Positive(t, testutil.CollectAndCount(searchDuration))
}
