package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/pkg/errors"
)

// Table is a generated dataset: binary feature columns plus a named
// continuous target column. Feature columns are addressed by index, the
// target by name, matching the layout the scoring harness consumes.
type Table struct {
	features   *mat.Dense
	target     *mat.VecDense
	targetName string
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	r, _ := t.features.Dims()
	return r
}

// NumCols returns the number of feature columns, excluding the target.
func (t *Table) NumCols() int {
	_, c := t.features.Dims()
	return c
}

// Features returns the feature matrix (rows x feature columns).
func (t *Table) Features() mat.Matrix {
	return t.features
}

// Target returns the target column.
func (t *Table) Target() *mat.VecDense {
	return t.target
}

// TargetName returns the name of the target column.
func (t *Table) TargetName() string {
	return t.targetName
}

// At returns the feature value at row i, column j.
func (t *Table) At(i, j int) float64 {
	return t.features.At(i, j)
}

// Col copies feature column j into a new slice.
func (t *Table) Col(j int) []float64 {
	col := make([]float64, t.NumRows())
	mat.Col(col, j, t.features)
	return col
}

// WriteCSV writes the table with a header row of feature indices followed
// by the target name. Feature values are written as integers, the target in
// full float precision.
func (t *Table) WriteCSV(w io.Writer) error {
	rows, cols := t.features.Dims()

	cw := csv.NewWriter(w)

	header := make([]string, cols+1)
	for j := 0; j < cols; j++ {
		header[j] = strconv.Itoa(j)
	}
	header[cols] = t.targetName
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	record := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.Itoa(int(t.features.At(i, j)))
		}
		record[cols] = strconv.FormatFloat(t.target.AtVec(i), 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "write csv row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
