package analyze

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Findings derives the noteworthy patterns from the computed aggregates:
// which species has the smallest and largest mean for the most discriminating
// attribute, and which attribute pair correlates most strongly.
func Findings(gm *GroupMeans, corr *mat.SymDense) []string {
	var out []string

	if j := widestSpreadAttribute(gm); j >= 0 {
		lo, hi := 0, 0
		for s := range gm.Species {
			if gm.Means[s][j] < gm.Means[lo][j] {
				lo = s
			}
			if gm.Means[s][j] > gm.Means[hi][j] {
				hi = s
			}
		}
		out = append(out,
			fmt.Sprintf("%s has the smallest mean %s (%.2f)", gm.Species[lo], gm.Attributes[j], gm.Means[lo][j]),
			fmt.Sprintf("%s has the largest mean %s (%.2f)", gm.Species[hi], gm.Attributes[j], gm.Means[hi][j]),
		)
	}

	if a, b, r := strongestPair(corr); a >= 0 {
		out = append(out, fmt.Sprintf("%s and %s are the most correlated attributes (r=%.3f)",
			gm.Attributes[a], gm.Attributes[b], r))
	}

	return out
}

// widestSpreadAttribute picks the attribute whose per-species means are
// furthest apart, i.e. the one that separates the species best.
func widestSpreadAttribute(gm *GroupMeans) int {
	best, bestSpread := -1, math.Inf(-1)
	for j := range gm.Attributes {
		lo, hi := math.Inf(1), math.Inf(-1)
		for s := range gm.Species {
			v := gm.Means[s][j]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if spread := hi - lo; spread > bestSpread {
			best, bestSpread = j, spread
		}
	}
	return best
}

// strongestPair returns the off-diagonal entry with the largest magnitude.
func strongestPair(corr *mat.SymDense) (int, int, float64) {
	n := corr.SymmetricDim()
	bestA, bestB, best := -1, -1, 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r := corr.At(i, j); math.Abs(r) > math.Abs(best) {
				bestA, bestB, best = i, j, r
			}
		}
	}
	return bestA, bestB, best
}
