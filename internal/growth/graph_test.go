package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_EdgeWeightsFromHistory(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"A": {"B", "B", "C"},
	})

	wAB, ok := graph.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, wAB, 0.0001)

	wAC, ok := graph.EdgeWeight("A", "C")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, wAC, 0.0001)

	assert.Equal(t, 2, graph.EdgeCount("A", "B"))
	assert.Equal(t, 1, graph.EdgeCount("A", "C"))
}

func TestBuildGraph_OutgoingWeightsSumToOne(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"분석가": {"시니어 분석가", "시니어 분석가", "데이터 엔지니어", "PM"},
		"PM":  {"센터장"},
	})

	for _, from := range []string{"분석가", "PM"} {
		sum := 0.0
		for _, to := range graph.Successors(from) {
			w, ok := graph.EdgeWeight(from, to)
			require.True(t, ok)
			assert.Greater(t, w, 0.0)
			assert.LessOrEqual(t, w, 1.0)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 0.0001)
	}
}

func TestBuildGraph_DropsSelfLoopsAndBlanks(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"A": {"A", "B", ""},
	})

	_, selfLoop := graph.EdgeWeight("A", "A")
	assert.False(t, selfLoop)

	w, ok := graph.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 1.0, w, 0.0001) // the self-loop and blank are not in the denominator
}

func TestBuildGraph_Idempotent(t *testing.T) {
	history := map[string][]string{
		"A": {"B", "C", "B"},
		"B": {"C"},
	}

	first := BuildGraph(history)
	second := BuildGraph(history)

	assert.Equal(t, first.Nodes(), second.Nodes())
	for _, from := range first.Nodes() {
		assert.Equal(t, first.Successors(from), second.Successors(from))
		for _, to := range first.Successors(from) {
			w1, _ := first.EdgeWeight(from, to)
			w2, _ := second.EdgeWeight(from, to)
			assert.InDelta(t, w1, w2, 0.0001)
			assert.Equal(t, first.EdgeCount(from, to), second.EdgeCount(from, to))
		}
	}
}

func TestShortestPath_FewestHops(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"A": {"B", "D"},
		"B": {"C"},
		"C": {"E"},
		"D": {"E"},
	})

	path := graph.ShortestPath("A", "E")
	assert.Equal(t, []string{"A", "D", "E"}, path)
}

func TestShortestPath_Disconnected(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"A": {"B"},
		"C": {"D"},
	})

	assert.Nil(t, graph.ShortestPath("A", "D"))
	assert.Nil(t, graph.ShortestPath("A", "unknown"))
}

func TestShortestPath_SameNode(t *testing.T) {
	graph := BuildGraph(map[string][]string{"A": {"B"}})
	assert.Equal(t, []string{"A"}, graph.ShortestPath("A", "A"))
}

func TestPathProbability(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"A": {"B", "B", "C"}, // A→B 2/3
		"B": {"C", "D"},      // B→C 1/2
	})

	assert.InDelta(t, 2.0/3.0*0.5, graph.PathProbability([]string{"A", "B", "C"}), 0.0001)
	assert.InDelta(t, 1.0, graph.PathProbability([]string{"A"}), 0.0001)
	assert.Zero(t, graph.PathProbability([]string{"A", "D"}))
	assert.Zero(t, graph.PathProbability(nil))
}

func TestPredecessors(t *testing.T) {
	graph := BuildGraph(map[string][]string{
		"A": {"C"},
		"B": {"C"},
	})
	assert.Equal(t, []string{"A", "B"}, graph.Predecessors("C"))
	assert.Empty(t, graph.Predecessors("A"))
}

func TestTransitionsFromSequences_ConsecutivePairs(t *testing.T) {
	transitions := TransitionsFromSequences(map[string][]string{
		"emp_a": {"분석가", "시니어 분석가", "데이터 팀장"},
		"emp_b": {"분석가", "시니어 분석가"},
		"emp_c": {"분석가", "데이터 팀장"},
	})

	assert.ElementsMatch(t, []string{"시니어 분석가", "시니어 분석가", "데이터 팀장"}, transitions["분석가"])
	assert.Equal(t, []string{"데이터 팀장"}, transitions["시니어 분석가"])
}

func TestBuildGraphFromSequences_EdgesAreJobToJob(t *testing.T) {
	graph := BuildGraphFromSequences(map[string][]string{
		"emp_a": {"분석가", "시니어 분석가", "데이터 팀장"},
		"emp_b": {"분석가", "시니어 분석가"},
		"emp_c": {"분석가", "데이터 팀장"},
	})

	w, ok := graph.EdgeWeight("분석가", "시니어 분석가")
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, w, 0.0001)

	w, ok = graph.EdgeWeight("분석가", "데이터 팀장")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, w, 0.0001)

	// Sequence keys are employee IDs and must never appear in the graph.
	assert.False(t, graph.HasNode("emp_a"))
	_, ok = graph.EdgeWeight("emp_a", "분석가")
	assert.False(t, ok)

	assert.Equal(t, []string{"분석가", "시니어 분석가"}, graph.Predecessors("데이터 팀장"))
}

func TestBuildGraphFromSequences_SingleJobSequenceAddsNothing(t *testing.T) {
	graph := BuildGraphFromSequences(map[string][]string{
		"emp_a": {"분석가"},
		"emp_b": {},
	})
	assert.Empty(t, graph.Nodes())
}
