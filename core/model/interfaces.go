// Package model defines the estimator contracts the scoring harness
// consumes. Model fitting itself is an external concern; the harness only
// needs Fit/Predict plus a way to read per-feature importances.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is a trainable model.
type Fitter interface {
	// Fit trains the model on X (samples x features) and y (samples x 1).
	Fit(X, y mat.Matrix) error
}

// Predictor produces predictions for new samples.
type Predictor interface {
	// Predict returns a samples x 1 matrix of predictions.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the minimal fit-then-predict contract.
type Estimator interface {
	Fitter
	Predictor
}

// ImportanceEstimator exposes per-feature importance values after fitting.
// This is the attribute the importance-recovery scores are computed from;
// any estimator with such a surface can be benchmarked, the library never
// inspects how the values were produced.
type ImportanceEstimator interface {
	Estimator

	// FeatureImportances returns one nonnegative value per feature.
	FeatureImportances() []float64
}

// CrossValidator is a hyperparameter search collaborator such as a grid or
// randomized search. Fit runs the search; the best refit estimator and its
// parameters are available afterwards.
type CrossValidator interface {
	Fitter

	// BestEstimator returns the estimator refit with the winning parameters.
	BestEstimator() Estimator

	// BestParams returns the winning parameter assignment.
	BestParams() map[string]interface{}
}

// Scorer computes a quality metric for a fitted model.
type Scorer interface {
	// Score returns the coefficient of determination R² on X, y.
	Score(X, y mat.Matrix) (float64, error)
}
