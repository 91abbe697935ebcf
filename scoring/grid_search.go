package scoring

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/core/model"
	"github.com/varbench/varbench/metrics"
	"github.com/varbench/varbench/pkg/errors"
)

// ParamGrid maps a parameter name to its candidate values.
type ParamGrid map[string][]interface{}

// GridSearchCV exhaustively evaluates every parameter assignment in a grid
// by mean k-fold R² and refits the winner on the full data. It implements
// model.CrossValidator, so it can be handed straight to
// CrossValidationScores.
type GridSearchCV struct {
	// NewEstimator builds a fresh estimator for a parameter assignment.
	NewEstimator func(params map[string]interface{}) model.Estimator

	Grid ParamGrid
	CV   *KFold

	best       model.Estimator
	bestParams map[string]interface{}
	bestScore  float64
}

// NewGridSearchCV creates a grid search over the given estimator factory.
// A nil cv defaults to unshuffled 5-fold.
func NewGridSearchCV(factory func(params map[string]interface{}) model.Estimator, grid ParamGrid, cv *KFold) *GridSearchCV {
	if cv == nil {
		cv = NewKFold(5, false, 0)
	}
	return &GridSearchCV{
		NewEstimator: factory,
		Grid:         grid,
		CV:           cv,
	}
}

// Fit runs the search. It fails if no parameter assignment can be fit on
// every fold.
func (gs *GridSearchCV) Fit(X, y mat.Matrix) error {
	if gs.NewEstimator == nil {
		return errors.NewValueError("GridSearchCV.Fit", "no estimator factory configured")
	}

	n, _ := X.Dims()
	folds := gs.CV.Split(n)

	bestScore := math.Inf(-1)
	var bestParams map[string]interface{}

	for _, params := range gs.candidates() {
		score, err := gs.meanFoldScore(params, X, y, folds)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestParams = params
		}
	}

	if bestParams == nil {
		return errors.NewValueError("GridSearchCV.Fit",
			"no parameter assignment could be evaluated on any fold")
	}

	// Refit the winner on the full data.
	best := gs.NewEstimator(bestParams)
	if err := best.Fit(X, y); err != nil {
		return errors.Wrap(err, "GridSearchCV.Fit: refit best estimator")
	}

	gs.best = best
	gs.bestParams = bestParams
	gs.bestScore = bestScore
	return nil
}

func (gs *GridSearchCV) meanFoldScore(params map[string]interface{}, X, y mat.Matrix, folds []Fold) (float64, error) {
	var sum float64
	for _, fold := range folds {
		XTrain, yTrain := takeRows(X, y, fold.TrainIndices)
		XTest, yTest := takeRows(X, y, fold.TestIndices)

		est := gs.NewEstimator(params)
		if err := est.Fit(XTrain, yTrain); err != nil {
			return 0, err
		}

		yPred, err := est.Predict(XTest)
		if err != nil {
			return 0, err
		}
		predVec := mat.NewVecDense(yTest.Len(), nil)
		for i := 0; i < yTest.Len(); i++ {
			predVec.SetVec(i, yPred.At(i, 0))
		}

		r2, err := metrics.R2Score(yTest, predVec)
		if err != nil {
			return 0, err
		}
		sum += r2
	}
	return sum / float64(len(folds)), nil
}

// candidates enumerates the cartesian product of the grid in a stable
// order (parameter names sorted lexically).
func (gs *GridSearchCV) candidates() []map[string]interface{} {
	names := make([]string, 0, len(gs.Grid))
	for name := range gs.Grid {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := []map[string]interface{}{{}}
	for _, name := range names {
		var next []map[string]interface{}
		for _, assignment := range assignments {
			for _, value := range gs.Grid[name] {
				combined := make(map[string]interface{}, len(assignment)+1)
				for k, v := range assignment {
					combined[k] = v
				}
				combined[name] = value
				next = append(next, combined)
			}
		}
		assignments = next
	}
	return assignments
}

// BestEstimator returns the estimator refit with the winning parameters.
func (gs *GridSearchCV) BestEstimator() model.Estimator {
	return gs.best
}

// BestParams returns the winning parameter assignment.
func (gs *GridSearchCV) BestParams() map[string]interface{} {
	return gs.bestParams
}

// BestScore returns the winning mean fold R².
func (gs *GridSearchCV) BestScore() float64 {
	return gs.bestScore
}
