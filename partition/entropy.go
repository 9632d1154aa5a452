// SPDX-License-Identifier: MIT
// Package partition: the degree-corrected SBM description length.

package partition

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogPosteriorProbability computes the description length of the current
// partition under the degree-corrected stochastic block model:
//
//	S = E·(1+x)·ln(1+x) − x·ln(x) + V·ln(B) − Σ M_rc · ln(M_rc / (dOut_r · dIn_c))
//
// with x = B²/E, summing over the nonzero blockmodel entries only — zero
// entries contribute nothing, which keeps scoring O(nnz) while B² grows.
// Lower is better; this is the objective the external search minimizes.
//
// Deterministic: the nonzero scan has a fixed (row, col) order, so
// identical (assignment, blockmodel, degrees) always yield the identical
// float result. An empty or edgeless partition scores +Inf.
// Complexity: O(nnz).
func (p *Partition) LogPosteriorProbability() float64 {
	if p.empty || p.numBlocks == 0 {
		return math.Inf(1)
	}
	edges := float64(p.blockmodel.Sum())
	if edges == 0 {
		return math.Inf(1)
	}

	rows, cols := p.blockmodel.Nonzero()
	vals := p.blockmodel.Values()
	contributions := make([]float64, len(vals))
	for i, v := range vals {
		m := float64(v)
		dOut := float64(p.degreesOut[rows[i]])
		dIn := float64(p.degreesIn[cols[i]])
		contributions[i] = m * math.Log(m/(dOut*dIn))
	}
	dataS := -floats.Sum(contributions)

	x := float64(p.numBlocks) * float64(p.numBlocks) / edges
	modelS := edges*(1+x)*math.Log(1+x) - x*math.Log(x) +
		float64(len(p.assignment))*math.Log(float64(p.numBlocks))

	return modelS + dataS
}
