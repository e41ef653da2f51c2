package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSet(n int) *Set {
	s := &Set{Columns: []string{"x"}}
	for i := 0; i < n; i++ {
		s.X = append(s.X, []float64{float64(i)})
		s.Y = append(s.Y, float64(i%2))
	}
	return s
}

func TestSplit_Sizes(t *testing.T) {
	tests := []struct {
		rows     int
		testSize float64
		wantEval int
	}{
		{10, 0.2, 2},
		{50, 0.2, 10},
		{7, 0.2, 1},   // round(1.4)
		{9, 0.5, 5},   // round(4.5) rounds away from zero
		{10, 0.0, 0},  // nothing held out
		{10, 1.0, 10}, // everything held out
	}
	for _, tt := range tests {
		train, eval, err := Split(makeSet(tt.rows), tt.testSize, DefaultSeed)
		require.NoError(t, err, "rows=%d testSize=%v", tt.rows, tt.testSize)
		assert.Len(t, eval.X, tt.wantEval, "rows=%d testSize=%v", tt.rows, tt.testSize)
		assert.Len(t, train.X, tt.rows-tt.wantEval)
		assert.Len(t, eval.Y, tt.wantEval)
		assert.Len(t, train.Y, tt.rows-tt.wantEval)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	s := makeSet(20)

	train1, eval1, err := Split(s, 0.2, 42)
	require.NoError(t, err)
	train2, eval2, err := Split(s, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, train1.X, train2.X)
	assert.Equal(t, train1.Y, train2.Y)
	assert.Equal(t, eval1.X, eval2.X)
	assert.Equal(t, eval1.Y, eval2.Y)
}

func TestSplit_DifferentSeeds(t *testing.T) {
	s := makeSet(50)

	_, eval1, err := Split(s, 0.2, 1)
	require.NoError(t, err)
	_, eval2, err := Split(s, 0.2, 2)
	require.NoError(t, err)

	assert.NotEqual(t, eval1.X, eval2.X)
}

func TestSplit_Partition(t *testing.T) {
	s := makeSet(10)
	train, eval, err := Split(s, 0.3, 42)
	require.NoError(t, err)

	// Every input row lands in exactly one partition.
	seen := make(map[float64]int)
	for _, row := range train.X {
		seen[row[0]]++
	}
	for _, row := range eval.X {
		seen[row[0]]++
	}
	require.Len(t, seen, 10)
	for v, count := range seen {
		assert.Equal(t, 1, count, "row %v assigned %d times", v, count)
	}
}

func TestSplit_RowLabelAlignment(t *testing.T) {
	// Label equals row parity in makeSet; it must still after shuffling.
	train, eval, err := Split(makeSet(30), 0.2, 7)
	require.NoError(t, err)

	check := func(s *Set) {
		for i, row := range s.X {
			assert.Equal(t, float64(int(row[0])%2), s.Y[i], "row %v misaligned", row[0])
		}
	}
	check(train)
	check(eval)
}

func TestSplit_Empty(t *testing.T) {
	_, _, err := Split(&Set{Columns: []string{"x"}}, 0.2, 42)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestSplit_LengthMismatch(t *testing.T) {
	s := &Set{Columns: []string{"x"}, X: [][]float64{{1}, {2}}, Y: []float64{1}}
	_, _, err := Split(s, 0.2, 42)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSplit_BadTestSize(t *testing.T) {
	_, _, err := Split(makeSet(5), 1.5, 42)
	assert.Error(t, err)
	_, _, err = Split(makeSet(5), -0.1, 42)
	assert.Error(t, err)
}
