package dataset

import (
	"github.com/varbench/varbench/pkg/errors"
)

// Importance-ranking modes. Both supported rankings are computed eagerly at
// construction; RankingSobol is reserved and requesting it fails rather
// than silently falling back.
const (
	RankingConstant = "constant"
	RankingScaled   = "scaled"
	RankingSobol    = "sobol"
)

// importanceBuckets computes the ground-truth importance vector for every
// supported ranking mode: "constant" marks important columns with 1,
// "scaled" uses the effect magnitude max(|f(0)|, |f(1)|).
func importanceBuckets(effects []Effect) map[string][]float64 {
	constant := make([]float64, len(effects))
	scaled := make([]float64, len(effects))

	for col, effect := range effects {
		if !effect.Important() {
			continue
		}
		constant[col] = 1
		scaled[col] = effect.Magnitude()
	}

	return map[string][]float64{
		RankingConstant: constant,
		RankingScaled:   scaled,
	}
}

// selectRanking picks the configured ranking out of the eager buckets.
func selectRanking(buckets map[string][]float64, mode string) ([]float64, error) {
	importances, ok := buckets[mode]
	if !ok {
		return nil, errors.NewConfigError("importance_ranking", mode,
			RankingConstant, RankingScaled)
	}
	return importances, nil
}
