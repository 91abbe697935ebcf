// Package linear provides a normal-equation linear regression used as the
// built-in estimator for importance-recovery benchmarks. Absolute
// coefficient magnitudes double as its per-feature importances.
package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/core/model"
	"github.com/varbench/varbench/core/parallel"
	"github.com/varbench/varbench/metrics"
	"github.com/varbench/varbench/pkg/errors"
)

// LinearRegression fits w = (X^T X + alpha I)^(-1) X^T y. With a zero
// alpha this is ordinary least squares; a positive alpha adds a ridge
// penalty (the intercept is never penalized).
type LinearRegression struct {
	model.BaseEstimator

	Weights   *mat.VecDense
	Intercept float64
	NFeatures int

	alpha        float64
	fitIntercept bool
}

// NewLinearRegression creates a linear regression model.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{fitIntercept: true}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit trains the model on X (samples x features) and y (samples x 1).
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LinearRegression.Fit")
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	offset := 0
	if lr.fitIntercept {
		offset = 1
	}

	// Design matrix with an optional leading column of ones.
	XD := mat.NewDense(r, c+offset, nil)
	parallel.ParallelizeWithThreshold(r, 1000, func(start, end int) {
		for i := start; i < end; i++ {
			if lr.fitIntercept {
				XD.Set(i, 0, 1.0)
			}
			for j := 0; j < c; j++ {
				XD.Set(i, j+offset, X.At(i, j))
			}
		}
	})

	var XT mat.Dense
	XT.CloneFrom(XD.T())

	var XTX mat.Dense
	XTX.Mul(&XT, XD)

	// Ridge penalty on the coefficient diagonal, skipping the intercept.
	if lr.alpha > 0 {
		for j := offset; j < c+offset; j++ {
			XTX.Set(j, j, XTX.At(j, j)+lr.alpha)
		}
	}

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return errors.Wrap(errors.ErrSingularMatrix, "LinearRegression.Fit")
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, yVec)

	weights := mat.NewVecDense(c+offset, nil)
	weights.MulVec(&XTXInv, &XTy)

	if lr.fitIntercept {
		lr.Intercept = weights.AtVec(0)
	} else {
		lr.Intercept = 0
	}
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, weights.AtVec(i+offset))
	}

	lr.SetFitted()
	return nil
}

// Predict returns a samples x 1 matrix of predictions.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// FeatureImportances returns the absolute coefficient per feature. This is
// the attribute the importance-recovery scores read.
func (lr *LinearRegression) FeatureImportances() []float64 {
	if lr.Weights == nil {
		return nil
	}

	importances := make([]float64, lr.Weights.Len())
	for i := range importances {
		importances[i] = math.Abs(lr.Weights.AtVec(i))
	}
	return importances
}

// Coefficients returns the raw fitted coefficients.
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.Weights == nil {
		return nil
	}

	coefficients := make([]float64, lr.Weights.Len())
	for i := range coefficients {
		coefficients[i] = lr.Weights.AtVec(i)
	}
	return coefficients
}

// Score computes R² on X, y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	yTrueVec := mat.NewVecDense(r, nil)
	yPredVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yTrueVec.SetVec(i, y.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return metrics.R2Score(yTrueVec, yPredVec)
}
