package feature

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Split defaults, matching the pipeline's fixed literals.
const (
	DefaultTestSize = 0.2
	DefaultSeed     = 42
)

var (
	// ErrEmptyDataset is returned when there are no rows to split.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrLengthMismatch is returned when features and labels are misaligned.
	ErrLengthMismatch = errors.New("feature/label length mismatch")
)

// Split partitions a feature set into train and eval subsets. Rows are
// shuffled with a PRNG seeded from seed, and round(testSize * n) rows are
// held out for evaluation. The same seed and input always yield the same
// partitions.
func Split(s *Set, testSize float64, seed int64) (train, eval *Set, err error) {
	n := len(s.X)
	if n == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if len(s.Y) != n {
		return nil, nil, fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, n, len(s.Y))
	}
	if testSize < 0 || testSize > 1 {
		return nil, nil, fmt.Errorf("test size %v out of range [0, 1]", testSize)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	evalN := int(math.Round(testSize * float64(n)))

	eval = subset(s, perm[:evalN])
	train = subset(s, perm[evalN:])
	return train, eval, nil
}

func subset(s *Set, rows []int) *Set {
	out := &Set{
		Columns: s.Columns,
		X:       make([][]float64, len(rows)),
		Y:       make([]float64, len(rows)),
	}
	for i, r := range rows {
		out.X[i] = s.X[r]
		out.Y[i] = s.Y[r]
	}
	return out
}
