package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/pkg/errors"
)

func TestLinearRegressionExactFit(t *testing.T) {
	// y = 2*x1 + 3*x2 + 1, noiseless.
	X := mat.NewDense(5, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
		2, 3,
	})
	y := mat.NewDense(5, 1, nil)
	for i := 0; i < 5; i++ {
		y.Set(i, 0, 2*X.At(i, 0)+3*X.At(i, 1)+1)
	}

	lr := NewLinearRegression()
	require.NoError(t, lr.Fit(X, y))

	assert.InDelta(t, 2.0, lr.Weights.AtVec(0), 1e-9)
	assert.InDelta(t, 3.0, lr.Weights.AtVec(1), 1e-9)
	assert.InDelta(t, 1.0, lr.Intercept, 1e-9)

	pred, err := lr.Predict(mat.NewDense(1, 2, []float64{4, 5}))
	require.NoError(t, err)
	assert.InDelta(t, 2*4+3*5+1, pred.At(0, 0), 1e-9)

	score, err := lr.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestLinearRegressionFeatureImportances(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	y := mat.NewDense(4, 1, nil)
	for i := 0; i < 4; i++ {
		y.Set(i, 0, -5*X.At(i, 0)+2*X.At(i, 1))
	}

	lr := NewLinearRegression()
	require.NoError(t, lr.Fit(X, y))

	importances := lr.FeatureImportances()
	require.Len(t, importances, 2)
	assert.InDelta(t, 5.0, importances[0], 1e-9)
	assert.InDelta(t, 2.0, importances[1], 1e-9)

	coefficients := lr.Coefficients()
	assert.InDelta(t, -5.0, coefficients[0], 1e-9)
}

func TestLinearRegressionNotFitted(t *testing.T) {
	lr := NewLinearRegression()

	_, err := lr.Predict(mat.NewDense(1, 1, []float64{1}))
	require.Error(t, err)

	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
	assert.Nil(t, lr.FeatureImportances())
}

func TestLinearRegressionRidgeShrinkage(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := mat.NewDense(4, 1, []float64{0, 2, 4, 6})

	ols := NewLinearRegression()
	require.NoError(t, ols.Fit(X, y))

	ridge := NewLinearRegression(WithAlpha(10))
	require.NoError(t, ridge.Fit(X, y))

	assert.Less(t, math.Abs(ridge.Weights.AtVec(0)), math.Abs(ols.Weights.AtVec(0)))
}

func TestLinearRegressionNoIntercept(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{2, 4, 6})

	lr := NewLinearRegression(WithFitIntercept(false))
	require.NoError(t, lr.Fit(X, y))

	assert.Equal(t, 0.0, lr.Intercept)
	assert.InDelta(t, 2.0, lr.Weights.AtVec(0), 1e-9)
}

func TestLinearRegressionDimensionErrors(t *testing.T) {
	lr := NewLinearRegression()

	err := lr.Fit(mat.NewDense(3, 2, nil), mat.NewDense(2, 1, nil))
	require.Error(t, err)

	require.NoError(t, lr.Fit(
		mat.NewDense(3, 1, []float64{0, 1, 2}),
		mat.NewDense(3, 1, []float64{0, 1, 2}),
	))
	_, err = lr.Predict(mat.NewDense(1, 3, nil))
	require.Error(t, err)
}
