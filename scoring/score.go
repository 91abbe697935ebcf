// Package scoring evaluates how well importance estimation methods recover
// the known ground truth of a generated dataset. The core comparison is a
// rank correlation (Spearman by default) between predicted and true
// importance vectors; everything else is orchestration around external
// estimators and cross-validators.
package scoring

import (
	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/core/model"
	"github.com/varbench/varbench/metrics"
	"github.com/varbench/varbench/pkg/errors"
)

// RankScore compares a predicted importance sequence against the ground
// truth and returns a correlation in [-1, 1].
type RankScore func(pred, truth []float64) (float64, error)

// ImportanceScore is the result of one importance comparison. It keeps
// "computed" and "uncomputable due to degenerate input" apart instead of
// silently collapsing both into a number; ValueOrZero recovers the
// coerce-to-zero behavior where a plain score is needed.
type ImportanceScore struct {
	Value      float64
	Degenerate bool
	// Err is the diagnostic cause when Degenerate is set.
	Err error
}

// ValueOrZero returns the computed score, or 0 for a degenerate result.
func (s ImportanceScore) ValueOrZero() float64 {
	if s.Degenerate {
		return 0
	}
	return s.Value
}

// Score compares predicted importances against the ground truth using
// Spearman rank correlation. Degenerate inputs (constant vectors, length
// mismatches) yield a Degenerate result and a diagnostic warning; no error
// escapes.
func Score(pred, truth []float64) ImportanceScore {
	return ScoreWith(pred, truth, metrics.SpearmanR)
}

// ScoreWith is Score under an explicit rank-correlation function.
func ScoreWith(pred, truth []float64, score RankScore) ImportanceScore {
	value, err := score(pred, truth)
	if err != nil {
		errors.Warn(errors.NewDegenerateMetricWarning("importance_score", err.Error()))
		return ImportanceScore{Degenerate: true, Err: err}
	}
	return ImportanceScore{Value: value}
}

// ModelImportanceScore reads per-feature importances off a fitted
// estimator and scores them against the ground truth.
func ModelImportanceScore(est model.ImportanceEstimator, truth []float64, score RankScore) ImportanceScore {
	return ScoreWith(est.FeatureImportances(), truth, score)
}

// EstimatorImportanceScore fits the estimator and scores its importances
// against the ground truth. Fit failures (including recovered panics) are
// degenerate results, matching the contract that scoring never propagates
// estimator errors.
func EstimatorImportanceScore(est model.ImportanceEstimator, X, y mat.Matrix, truth []float64) ImportanceScore {
	err := errors.SafeExecute("EstimatorImportanceScore fit", func() error {
		return est.Fit(X, y)
	})
	if err != nil {
		errors.Warn(errors.NewFitFailureWarning("EstimatorImportanceScore", err))
		return ImportanceScore{Degenerate: true, Err: err}
	}
	return ModelImportanceScore(est, truth, metrics.SpearmanR)
}
