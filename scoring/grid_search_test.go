package scoring

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/core/model"
	"github.com/varbench/varbench/linear"
)

func linearFactory(params map[string]interface{}) model.Estimator {
	alpha, _ := params["alpha"].(float64)
	return linear.NewLinearRegression(linear.WithAlpha(alpha))
}

// noiselessData builds y = 2*x1 - x2 exactly, so unpenalized least squares
// wins any grid that includes alpha 0.
func noiselessData(n int) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewPCG(1, 1))
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x1 := rng.Float64()
		x2 := rng.Float64()
		X.Set(i, 0, x1)
		X.Set(i, 1, x2)
		y.Set(i, 0, 2*x1-x2)
	}
	return X, y
}

func TestGridSearchCVPicksUnpenalizedFit(t *testing.T) {
	X, y := noiselessData(50)

	gs := NewGridSearchCV(linearFactory, ParamGrid{
		"alpha": {0.0, 1.0, 10.0},
	}, NewKFold(5, false, 0))

	require.NoError(t, gs.Fit(X, y))

	assert.Equal(t, 0.0, gs.BestParams()["alpha"])
	assert.InDelta(t, 1.0, gs.BestScore(), 1e-9)
	require.NotNil(t, gs.BestEstimator())

	best, ok := gs.BestEstimator().(*linear.LinearRegression)
	require.True(t, ok)
	assert.InDelta(t, 2.0, best.Weights.AtVec(0), 1e-9)
	assert.InDelta(t, -1.0, best.Weights.AtVec(1), 1e-9)
}

func TestGridSearchCVCandidates(t *testing.T) {
	gs := NewGridSearchCV(linearFactory, ParamGrid{
		"alpha": {0.0, 1.0},
		"beta":  {"a", "b", "c"},
	}, nil)

	candidates := gs.candidates()
	require.Len(t, candidates, 6)

	seen := make(map[[2]interface{}]bool)
	for _, params := range candidates {
		seen[[2]interface{}{params["alpha"], params["beta"]}] = true
	}
	assert.Len(t, seen, 6)
}

func TestGridSearchCVNoFactory(t *testing.T) {
	gs := NewGridSearchCV(nil, ParamGrid{"alpha": {0.0}}, nil)
	require.Error(t, gs.Fit(mat.NewDense(10, 1, nil), mat.NewDense(10, 1, nil)))
}

func TestGridSearchCVAllCandidatesFail(t *testing.T) {
	X, y := noiselessData(20)

	// Every candidate estimator refuses to fit.
	gs := NewGridSearchCV(func(map[string]interface{}) model.Estimator {
		return failingEstimator{}
	}, ParamGrid{"alpha": {0.0, 1.0}}, NewKFold(4, false, 0))

	require.Error(t, gs.Fit(X, y))
	assert.Nil(t, gs.BestEstimator())
}
