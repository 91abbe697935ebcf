package dataset

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/varbench/varbench/pkg/errors"
)

// Interaction ties a column to the important variable it mimics. In any
// generated row the column takes the mimicked column's value with
// probability |Correlation| (its complement when Correlation is negative)
// and keeps its own sampled value otherwise.
type Interaction struct {
	Mimics      int     `json:"mimics"`
	Correlation float64 `json:"correlation"`
}

// Supported distribution names for correlation and noise draws.
const (
	DistUniform = "uniform"
	DistNormal  = "normal"
	DistBeta    = "beta"
	DistGamma   = "gamma"
)

// synthesizeInteractions assigns each interaction term a uniformly chosen
// important variable to mimic and a correlation drawn from the configured
// distribution, clipped to [-1, 1].
//
// Draws come from the generator's persistent primary stream (rng and src
// wrap the same source); this routine is deliberately not reseeded.
func synthesizeInteractions(rng *rand.Rand, src rand.Source, terms, important []int, distribution string, scale float64) (map[int]Interaction, error) {
	interactions := make(map[int]Interaction, len(terms))

	for _, term := range terms {
		mimics := important[rng.IntN(len(important))]

		var correlation float64
		switch distribution {
		case DistUniform:
			correlation = distuv.Uniform{Min: -scale, Max: scale, Src: src}.Rand()
		case DistNormal:
			correlation = distuv.Normal{Mu: 0, Sigma: scale, Src: src}.Rand()
		case DistBeta:
			correlation = distuv.Beta{Alpha: scale, Beta: scale, Src: src}.Rand()
		default:
			return nil, errors.NewConfigError("correlation_distribution", distribution,
				DistUniform, DistNormal, DistBeta)
		}

		correlation = math.Max(-1, math.Min(1, correlation))
		interactions[term] = Interaction{Mimics: mimics, Correlation: correlation}
	}

	return interactions, nil
}

// interactionTerms returns the interaction column indices in ascending
// order. The overwrite pass iterates in this order so generated datasets
// are reproducible for a fixed seed.
func interactionTerms(interactions map[int]Interaction) []int {
	terms := make([]int, 0, len(interactions))
	for term := range interactions {
		terms = append(terms, term)
	}
	sort.Ints(terms)
	return terms
}
