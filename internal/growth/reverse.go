package growth

import (
	"sort"

	"github.com/jonathan/talent-compass/internal/types"
)

// maxReversePaths caps how many predecessor chains a reverse lookup returns.
const maxReversePaths = 5

// FindReversePaths enumerates predecessor chains ending at target, up to
// maxDepth edges deep, answering "which jobs historically lead here". Each
// chain is scored by the product of its forward edge weights and cycles are
// guarded per path. The best-scored chains come first, capped at 5.
func (r *Recommender) FindReversePaths(target string, maxDepth int) []types.ReversePath {
	if maxDepth <= 0 || !r.graph.HasNode(target) {
		return nil
	}

	var chains []types.ReversePath
	onPath := map[string]bool{target: true}

	var walk func(job string, chain []string, depth int)
	walk = func(job string, chain []string, depth int) {
		if depth >= maxDepth {
			return
		}
		for _, pred := range r.graph.Predecessors(job) {
			if onPath[pred] {
				continue
			}
			// chain is built back-to-front; prepend the predecessor.
			extended := append([]string{pred}, chain...)
			forward := make([]string, len(extended))
			copy(forward, extended)
			chains = append(chains, types.ReversePath{
				Jobs:  forward,
				Score: r.graph.PathProbability(forward),
			})

			onPath[pred] = true
			walk(pred, extended, depth+1)
			delete(onPath, pred)
		}
	}
	walk(target, []string{target}, 0)

	sort.Slice(chains, func(i, j int) bool {
		if chains[i].Score != chains[j].Score {
			return chains[i].Score > chains[j].Score
		}
		if len(chains[i].Jobs) != len(chains[j].Jobs) {
			return len(chains[i].Jobs) < len(chains[j].Jobs)
		}
		return chains[i].Jobs[0] < chains[j].Jobs[0]
	})

	if len(chains) > maxReversePaths {
		chains = chains[:maxReversePaths]
	}
	return chains
}
