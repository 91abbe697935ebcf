// Package varbench provides a synthetic-dataset generator with known
// ground-truth feature importances, and a scoring harness that measures how
// well importance estimation methods recover that ground truth.
//
// The core is the dataset package: it synthesizes per-variable effect
// functions, interaction columns that stochastically mimic important
// variables, configurable noise, and the resulting importance vectors,
// all deterministically from a single seed, so any generated fixture can
// be reproduced exactly.
//
// # Quick Start
//
// Generate a dataset and check how well a linear model recovers the true
// importances:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/varbench/varbench/dataset"
//	    "github.com/varbench/varbench/linear"
//	    "github.com/varbench/varbench/scoring"
//	)
//
//	func main() {
//	    gen, err := dataset.New(
//	        dataset.WithNumCols(20),
//	        dataset.WithNumRows(500),
//	        dataset.WithNumImportant(5),
//	        dataset.WithEffectTypes(dataset.EffectTypesLinear),
//	        dataset.WithSeed(42),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    table, err := gen.GenerateData()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score := scoring.EstimatorImportanceScore(
//	        linear.NewLinearRegression(),
//	        table.Features(), table.Target(), gen.Importances(),
//	    )
//	    fmt.Printf("importance recovery: %.3f\n", score.ValueOrZero())
//	}
//
// # Packages
//
//   - dataset: the generation engine (effects, interactions, noise, tables)
//   - scoring: train/test splitting, grid search, importance-recovery scores
//   - metrics: regression metrics and Spearman rank correlation
//   - linear: built-in normal-equation linear regression estimator
//   - core/model: estimator contracts consumed by the harness
//   - pkg/errors, pkg/log: structured errors, warnings and logging
package varbench
