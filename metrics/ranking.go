package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/varbench/varbench/pkg/errors"
)

// ErrDegenerate marks inputs over which a rank correlation is undefined:
// fewer than two elements, or a constant vector. Callers distinguishing
// "uncomputable due to degenerate input" from real failures should test
// with errors.Is.
var ErrDegenerate = errors.New("rank correlation undefined for degenerate input")

// SpearmanR computes the Spearman rank-correlation coefficient between two
// value sequences, using average ranks for ties. It does not coerce
// degenerate inputs to a score; those return an error wrapping
// ErrDegenerate so the caller decides how to surface them.
func SpearmanR(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("SpearmanR", len(a), len(b), 0)
	}
	if len(a) < 2 {
		return 0, errors.Wrapf(ErrDegenerate, "need at least 2 elements, got %d", len(a))
	}

	ra := rankdata(a)
	rb := rankdata(b)

	if constant(ra) || constant(rb) {
		return 0, errors.Wrap(ErrDegenerate, "constant input vector")
	}

	// Spearman's rho is Pearson correlation over the rank transforms.
	return stat.Correlation(ra, rb, nil), nil
}

// rankdata assigns 1-based ranks, averaging over ties.
func rankdata(x []float64) []float64 {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && x[idx[j+1]] == x[idx[i]] {
			j++
		}
		// Average rank across the tie run [i, j].
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func constant(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			return false
		}
	}
	return true
}
