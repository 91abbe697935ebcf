// Package log defines standard attribute keys for data-generation and
// scoring operations.
//
// Using these keys keeps generation and benchmark logs queryable: every
// record that touches a dataset reports the same shape/seed fields, and
// every scoring record reports the same metric fields.

package log

// Operation context.
const (
	// OperationKey specifies the operation being performed.
	// Standard values: "generate", "predict", "fit", "score", "cross_validate"
	OperationKey = "op"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "scoring", "linear"
	ComponentKey = "component"

	// ModelNameKey identifies the estimator type under evaluation.
	// Examples: "LinearRegression", "GridSearchCV"
	ModelNameKey = "model.name"
)

// Dataset shape and provenance.
const (
	// RowsKey indicates the number of rows in the dataset.
	RowsKey = "data.rows"

	// ColsKey indicates the number of feature columns in the dataset.
	ColsKey = "data.cols"

	// ImportantKey indicates how many columns carry a nonzero effect.
	ImportantKey = "data.important"

	// InteractionsKey indicates how many columns are interaction terms.
	InteractionsKey = "data.interactions"

	// SeedKey records the RNG seed a dataset was generated from. Together
	// with the configuration it fully determines the dataset.
	SeedKey = "data.seed"

	// TargetKey records the name of the target column.
	TargetKey = "data.target"
)

// Scoring metrics.
const (
	// ScoreNameKey identifies which importance score is being reported.
	// Examples: "model_importance", "shap_importance"
	ScoreNameKey = "score.name"

	// ScoreValueKey records the rank-correlation score against ground truth.
	ScoreValueKey = "score.value"

	// TrainingR2Key records training-set R² of the fitted model.
	TrainingR2Key = "score.training_r2"

	// TestR2Key records held-out R² of the fitted model.
	TestR2Key = "score.test_r2"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
