package classifier

import "github.com/cardwatch-dev/cardwatch/internal/feature"

// Accuracy returns the fraction of rows in s whose predicted label matches
// the true label. The result is always within [0, 1]; an empty set scores 0.
func Accuracy(m *Model, s *feature.Set) float64 {
	if len(s.X) == 0 {
		return 0
	}
	correct := 0
	for i, row := range s.X {
		if m.Predict(row) == (s.Y[i] == 1) {
			correct++
		}
	}
	return float64(correct) / float64(len(s.X))
}
