package scoring

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/core/model"
	"github.com/varbench/varbench/metrics"
	"github.com/varbench/varbench/pkg/errors"
	vlog "github.com/varbench/varbench/pkg/log"
)

// ModelImportance is the default score name: importances read directly off
// the best estimator. SHAP, LOCO and similar external methods register
// under their own names through WithImportanceSource.
const ModelImportance = "model_importance"

// ImportanceSource produces a predicted importance sequence for the fitted
// best estimator, typically by running an external attribution method over
// the training split.
type ImportanceSource func(est model.Estimator, XTrain mat.Matrix, yTrain *mat.VecDense) ([]float64, error)

// CVScores aggregates the results of one cross-validated benchmark run.
// When the cross-validator fails to fit, every field is left nil: the run
// is marked missing rather than scored.
type CVScores struct {
	// Model is the best estimator, nil when fitting failed.
	Model model.Estimator
	// Params is the winning parameter assignment, nil when fitting failed.
	Params map[string]interface{}
	// TrainingR2 and TestR2 are nil when fitting failed or the model
	// cannot predict.
	TrainingR2 *float64
	TestR2     *float64
	// Importance maps score name to result; nil when fitting failed.
	Importance map[string]ImportanceScore
}

// Failed reports whether the underlying fit failed and the run carries no
// scores.
func (s CVScores) Failed() bool {
	return s.Model == nil
}

type cvOptions struct {
	testSize  float64
	splitSeed uint64
	names     []string
	sources   map[string]ImportanceSource
	score     RankScore
}

// CVOption configures CrossValidationScores.
type CVOption func(*cvOptions)

// WithTestSize sets the held-out fraction (default 0.2).
func WithTestSize(testSize float64) CVOption {
	return func(o *cvOptions) {
		o.testSize = testSize
	}
}

// WithSplitSeed sets the train/test shuffle seed (default 42).
func WithSplitSeed(seed uint64) CVOption {
	return func(o *cvOptions) {
		o.splitSeed = seed
	}
}

// WithScoreNames selects which importance scores to compute (default
// ModelImportance only).
func WithScoreNames(names ...string) CVOption {
	return func(o *cvOptions) {
		o.names = names
	}
}

// WithImportanceSource registers an external importance method under a
// score name.
func WithImportanceSource(name string, source ImportanceSource) CVOption {
	return func(o *cvOptions) {
		o.sources[name] = source
	}
}

// WithRankScore replaces the Spearman default.
func WithRankScore(score RankScore) CVOption {
	return func(o *cvOptions) {
		o.score = score
	}
}

// CrossValidationScores fits an initialized cross-validator on a shuffled
// train split, evaluates the best estimator on both splits, and scores
// every requested importance method against the ground-truth vector.
//
// A fit failure (an error or a recovered panic from the collaborator) is
// absorbed: the returned CVScores has all fields nil and a warning is
// emitted. Importance methods that fail on degenerate input score 0 with
// the cause kept in the result.
func CrossValidationScores(cv model.CrossValidator, X, y mat.Matrix, truth []float64, opts ...CVOption) (CVScores, error) {
	o := cvOptions{
		testSize:  0.2,
		splitSeed: 42,
		names:     []string{ModelImportance},
		sources:   map[string]ImportanceSource{},
		score:     metrics.SpearmanR,
	}
	for _, opt := range opts {
		opt(&o)
	}

	XTrain, XTest, yTrain, yTest, err := TrainTestSplit(X, y, o.testSize, o.splitSeed)
	if err != nil {
		return CVScores{}, err
	}

	fitErr := errors.SafeExecute("CrossValidationScores fit", func() error {
		return cv.Fit(XTrain, yTrain)
	})
	if fitErr != nil {
		errors.Warn(errors.NewFitFailureWarning("CrossValidationScores", fitErr))
		slog.Warn("cross-validator failed to fit, run marked missing",
			vlog.OperationKey, "cross_validate",
			vlog.ErrAttr(fitErr))
		return CVScores{}, nil
	}

	best := cv.BestEstimator()
	scores := CVScores{
		Model:      best,
		Params:     cv.BestParams(),
		Importance: make(map[string]ImportanceScore, len(o.names)),
	}

	if trainR2, err := predictR2(best, XTrain, yTrain); err == nil {
		scores.TrainingR2 = &trainR2
	}
	if testR2, err := predictR2(best, XTest, yTest); err == nil {
		scores.TestR2 = &testR2
	}

	for _, name := range o.names {
		scores.Importance[name] = importanceFor(name, best, XTrain, yTrain, truth, o)
	}

	return scores, nil
}

func importanceFor(name string, best model.Estimator, XTrain *mat.Dense, yTrain *mat.VecDense, truth []float64, o cvOptions) ImportanceScore {
	if name == ModelImportance {
		est, ok := best.(model.ImportanceEstimator)
		if !ok {
			err := errors.Newf("best estimator %T exposes no feature importances", best)
			errors.Warn(errors.NewDegenerateMetricWarning(name, err.Error()))
			return ImportanceScore{Degenerate: true, Err: err}
		}
		return ModelImportanceScore(est, truth, o.score)
	}

	source, ok := o.sources[name]
	if !ok {
		err := errors.Newf("no importance source registered for %q", name)
		errors.Warn(errors.NewDegenerateMetricWarning(name, err.Error()))
		return ImportanceScore{Degenerate: true, Err: err}
	}

	pred, err := source(best, XTrain, yTrain)
	if err != nil {
		errors.Warn(errors.NewDegenerateMetricWarning(name, err.Error()))
		return ImportanceScore{Degenerate: true, Err: err}
	}
	return ScoreWith(pred, truth, o.score)
}

func predictR2(est model.Estimator, X mat.Matrix, y *mat.VecDense) (float64, error) {
	yPred, err := est.Predict(X)
	if err != nil {
		return 0, err
	}

	predVec := mat.NewVecDense(y.Len(), nil)
	for i := 0; i < y.Len(); i++ {
		predVec.SetVec(i, yPred.At(i, 0))
	}

	return metrics.R2Score(y, predVec)
}
