package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/varbench/varbench/pkg/errors"
)

// synthesizeNoise draws size additive noise samples from the named
// distribution at the given scale.
//
// A zero scale returns all zeros regardless of distribution; this also
// sidesteps degenerate draws such as a gamma with shape 0.
func synthesizeNoise(src rand.Source, size int, distribution string, scale float64) ([]float64, error) {
	if scale < 0 {
		return nil, errors.NewValidationError("noise_scale", "must be nonnegative", scale)
	}

	noise := make([]float64, size)
	if scale == 0 {
		return noise, nil
	}

	var dist distuv.Rander
	switch distribution {
	case DistUniform:
		dist = distuv.Uniform{Min: -scale, Max: scale, Src: src}
	case DistNormal:
		dist = distuv.Normal{Mu: 0, Sigma: scale, Src: src}
	case DistGamma:
		dist = distuv.Gamma{Alpha: scale, Beta: 1, Src: src}
	default:
		return nil, errors.NewConfigError("noise_distribution", distribution,
			DistUniform, DistNormal, DistGamma)
	}

	for i := range noise {
		noise[i] = dist.Rand()
	}

	return noise, nil
}
