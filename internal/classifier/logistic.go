package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cardwatch-dev/cardwatch/internal/feature"
)

// Model is a fitted logistic regression binary classifier. Features are
// standardized with the stored per-column mean and scale before the linear
// decision function is applied.
type Model struct {
	Columns []string
	Weights []float64
	Bias    float64
	Means   []float64
	Scales  []float64
}

// Params controls the gradient descent fit.
type Params struct {
	Epochs       int
	LearningRate float64
	Tolerance    float64 // stop early once the gradient norm drops below this
}

// DefaultParams returns trainer hyperparameters that converge on small
// tabular datasets.
func DefaultParams() Params {
	return Params{
		Epochs:       500,
		LearningRate: 0.1,
		Tolerance:    1e-6,
	}
}

// Train fits a logistic regression on the training set by batch gradient
// descent. progress, if non-nil, is called once per completed epoch.
func Train(s *feature.Set, p Params, progress func(epoch int)) (*Model, error) {
	n := len(s.X)
	if n == 0 {
		return nil, feature.ErrEmptyDataset
	}
	if len(s.Y) != n {
		return nil, fmt.Errorf("%w: %d rows, %d labels", feature.ErrLengthMismatch, n, len(s.Y))
	}
	d := len(s.Columns)
	if p.Epochs <= 0 || p.LearningRate <= 0 {
		return nil, fmt.Errorf("invalid trainer params: epochs=%d learning_rate=%v", p.Epochs, p.LearningRate)
	}

	m := &Model{
		Columns: append([]string(nil), s.Columns...),
		Weights: make([]float64, d),
		Means:   make([]float64, d),
		Scales:  make([]float64, d),
	}

	// Per-column standardization keeps large-magnitude columns (Year) from
	// dominating the gradient.
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		for i := 0; i < n; i++ {
			col[i] = s.X[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		m.Means[j] = mean
		m.Scales[j] = std
	}

	x := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			x.Set(i, j, (s.X[i][j]-m.Means[j])/m.Scales[j])
		}
	}

	grad := make([]float64, d)
	for epoch := 1; epoch <= p.Epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradBias float64

		for i := 0; i < n; i++ {
			row := x.RawRowView(i)
			residual := sigmoid(floats.Dot(row, m.Weights)+m.Bias) - s.Y[i]
			floats.AddScaled(grad, residual, row)
			gradBias += residual
		}
		floats.Scale(1/float64(n), grad)
		gradBias /= float64(n)

		floats.AddScaled(m.Weights, -p.LearningRate, grad)
		m.Bias -= p.LearningRate * gradBias

		if progress != nil {
			progress(epoch)
		}
		if floats.Norm(grad, 2) < p.Tolerance && math.Abs(gradBias) < p.Tolerance {
			break
		}
	}
	return m, nil
}

// Score returns the predicted fraud probability for one raw feature row.
func (m *Model) Score(row []float64) float64 {
	z := m.Bias
	for j, w := range m.Weights {
		z += w * (row[j] - m.Means[j]) / m.Scales[j]
	}
	return sigmoid(z)
}

// Predict returns the predicted label for one raw feature row.
func (m *Model) Predict(row []float64) bool {
	return m.Score(row) >= 0.5
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
