package scoring

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/varbench/varbench/pkg/errors"
)

// Fold holds the train/test row indices of a single cross-validation fold.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold is a k-fold cross-validation splitter.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    uint64
}

// NewKFold creates a k-fold splitter.
func NewKFold(nSplits int, shuffle bool, seed uint64) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{
		NSplits: nSplits,
		Shuffle: shuffle,
		Seed:    seed,
	}
}

// Split generates train/test indices for each fold over n samples.
func (kf *KFold) Split(n int) []Fold {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(kf.Seed, kf.Seed))
		r.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	// Distribute remainder rows across the leading folds.
	foldSizes := make([]int, kf.NSplits)
	for i := range foldSizes {
		foldSizes[i] = n / kf.NSplits
		if i < n%kf.NSplits {
			foldSizes[i]++
		}
	}

	folds := make([]Fold, 0, kf.NSplits)
	current := 0
	for _, size := range foldSizes {
		test := indices[current : current+size]
		train := make([]int, 0, n-size)
		train = append(train, indices[:current]...)
		train = append(train, indices[current+size:]...)

		folds = append(folds, Fold{
			TrainIndices: append([]int(nil), train...),
			TestIndices:  append([]int(nil), test...),
		})
		current += size
	}

	return folds
}

// TrainTestSplit shuffles the rows of X, y and splits them into train and
// test sets, with testSize the fraction held out.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed uint64) (XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense, err error) {
	r, _ := X.Dims()
	ry, _ := y.Dims()
	if ry != r {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", r, ry, 0)
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}

	nTest := int(float64(r) * testSize)
	if nTest == 0 || nTest == r {
		return nil, nil, nil, nil, errors.NewValidationError("test_size",
			"split leaves an empty train or test set", testSize)
	}

	indices := make([]int, r)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(r, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	XTest, yTest = takeRows(X, y, indices[:nTest])
	XTrain, yTrain = takeRows(X, y, indices[nTest:])
	return XTrain, XTest, yTrain, yTest, nil
}

// takeRows copies the selected rows of X and y into new matrices.
func takeRows(X mat.Matrix, y mat.Matrix, rows []int) (*mat.Dense, *mat.VecDense) {
	_, c := X.Dims()
	Xs := mat.NewDense(len(rows), c, nil)
	ys := mat.NewVecDense(len(rows), nil)
	for i, row := range rows {
		for j := 0; j < c; j++ {
			Xs.Set(i, j, X.At(row, j))
		}
		ys.SetVec(i, y.At(row, 0))
	}
	return Xs, ys
}
