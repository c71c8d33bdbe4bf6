// Package growth builds job-transition graphs from historical move data and
// simulates multi-stage career paths over them.
package growth

import (
	"sort"
	"strings"
)

// Edge is one observed job-to-job transition. Weight is the share of the
// source job's outgoing transitions that went to this destination, always in
// (0, 1]; Count is the raw number of observations.
type Edge struct {
	Weight float64
	Count  int
}

// TransitionGraph is a directed weighted graph over job-title strings.
// Build one per recommendation batch; it is immutable after construction and
// safe for concurrent reads.
type TransitionGraph struct {
	edges map[string]map[string]Edge
	preds map[string]map[string]bool
	nodes map[string]bool
}

// BuildGraph builds a transition graph from a {from_job: [to_job, ...]}
// history map. Repeated destinations encode frequency; self-loops and blank
// titles are dropped. Building is O(total observations) and stateless, so
// rebuilding per batch is cheap.
func BuildGraph(history map[string][]string) *TransitionGraph {
	g := &TransitionGraph{
		edges: make(map[string]map[string]Edge),
		preds: make(map[string]map[string]bool),
		nodes: make(map[string]bool),
	}

	for from, transitions := range history {
		from = strings.TrimSpace(from)
		if from == "" {
			continue
		}

		counts := make(map[string]int)
		total := 0
		for _, to := range transitions {
			to = strings.TrimSpace(to)
			if to == "" || to == from {
				continue
			}
			counts[to]++
			total++
		}
		if total == 0 {
			continue
		}

		g.nodes[from] = true
		out := make(map[string]Edge, len(counts))
		for to, count := range counts {
			out[to] = Edge{
				Weight: float64(count) / float64(total),
				Count:  count,
			}
			g.nodes[to] = true
			if g.preds[to] == nil {
				g.preds[to] = make(map[string]bool)
			}
			g.preds[to][from] = true
		}
		g.edges[from] = out
	}

	return g
}

// TransitionsFromSequences flattens per-employee ordered job sequences
// ({employee_id: [job1, job2, ...]}) into the {from_job: [to_job, ...]}
// adjacency map BuildGraph consumes: each consecutive pair in a sequence is
// one observed transition. Sequence keys are employee IDs, not jobs, and
// never become graph nodes.
func TransitionsFromSequences(sequences map[string][]string) map[string][]string {
	transitions := make(map[string][]string)
	for _, sequence := range sequences {
		for i := 1; i < len(sequence); i++ {
			from := strings.TrimSpace(sequence[i-1])
			to := strings.TrimSpace(sequence[i])
			if from == "" || to == "" {
				continue
			}
			transitions[from] = append(transitions[from], to)
		}
	}
	return transitions
}

// BuildGraphFromSequences builds a transition graph directly from
// per-employee job sequences, the shape transition-history files carry.
func BuildGraphFromSequences(sequences map[string][]string) *TransitionGraph {
	return BuildGraph(TransitionsFromSequences(sequences))
}

// HasNode reports whether the job title appears anywhere in the history.
func (g *TransitionGraph) HasNode(job string) bool {
	return g.nodes[job]
}

// Nodes returns all job titles in sorted order.
func (g *TransitionGraph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// EdgeWeight returns the transition probability from→to and whether a direct
// edge exists.
func (g *TransitionGraph) EdgeWeight(from, to string) (float64, bool) {
	e, ok := g.edges[from][to]
	return e.Weight, ok
}

// EdgeCount returns the raw number of observed from→to transitions, 0 when
// none were observed.
func (g *TransitionGraph) EdgeCount(from, to string) int {
	return g.edges[from][to].Count
}

// Successors returns the direct destinations of a job in sorted order.
func (g *TransitionGraph) Successors(from string) []string {
	out := make([]string, 0, len(g.edges[from]))
	for to := range g.edges[from] {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// Predecessors returns the jobs with a direct edge into to, sorted.
func (g *TransitionGraph) Predecessors(to string) []string {
	out := make([]string, 0, len(g.preds[to]))
	for from := range g.preds[to] {
		out = append(out, from)
	}
	sort.Strings(out)
	return out
}

// ShortestPath returns a fewest-hops path from→to including both endpoints,
// or nil when no path exists. Neighbors are expanded in sorted order so equal-
// length paths resolve deterministically.
func (g *TransitionGraph) ShortestPath(from, to string) []string {
	if from == to {
		if g.nodes[from] {
			return []string{from}
		}
		return nil
	}
	if !g.nodes[from] || !g.nodes[to] {
		return nil
	}

	parent := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.Successors(current) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = current
			if next == to {
				return reconstruct(parent, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// PathProbability multiplies the edge weights along a path. A path with any
// missing edge has probability 0; single-node paths have probability 1.
func (g *TransitionGraph) PathProbability(path []string) float64 {
	if len(path) == 0 {
		return 0
	}
	probability := 1.0
	for i := 1; i < len(path); i++ {
		weight, ok := g.EdgeWeight(path[i-1], path[i])
		if !ok {
			return 0
		}
		probability *= weight
	}
	return probability
}

func reconstruct(parent map[string]string, from, to string) []string {
	path := []string{to}
	for current := to; current != from; current = parent[current] {
		path = append(path, parent[current])
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
