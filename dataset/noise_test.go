package dataset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varbench/varbench/pkg/errors"
)

func TestNoiseZeroScale(t *testing.T) {
	src := rand.NewPCG(1, 1)

	// Gamma with shape 0 would be degenerate; the zero-scale short circuit
	// must win regardless of distribution.
	for _, dist := range []string{DistUniform, DistNormal, DistGamma, "whatever"} {
		noise, err := synthesizeNoise(src, 100, dist, 0)
		require.NoError(t, err, dist)
		require.Len(t, noise, 100)
		for _, v := range noise {
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestNoiseDistributions(t *testing.T) {
	src := rand.NewPCG(42, 42)

	uniform, err := synthesizeNoise(src, 1000, DistUniform, 2)
	require.NoError(t, err)
	for _, v := range uniform {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.LessOrEqual(t, v, 2.0)
	}

	gamma, err := synthesizeNoise(src, 1000, DistGamma, 1.5)
	require.NoError(t, err)
	for _, v := range gamma {
		assert.Greater(t, v, 0.0)
	}

	normal, err := synthesizeNoise(src, 1000, DistNormal, 1)
	require.NoError(t, err)
	var sum float64
	for _, v := range normal {
		sum += v
	}
	assert.InDelta(t, 0, sum/1000, 0.15)
}

func TestNoiseUnsupportedDistribution(t *testing.T) {
	_, err := synthesizeNoise(rand.NewPCG(1, 1), 10, "laplace", 1)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr), "got %v", err)
}

func TestNoiseNegativeScale(t *testing.T) {
	_, err := synthesizeNoise(rand.NewPCG(1, 1), 10, DistNormal, -1)
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr), "got %v", err)
}
