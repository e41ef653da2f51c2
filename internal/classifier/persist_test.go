package classifier

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwatch-dev/cardwatch/internal/feature"
)

func trainedBundle(t *testing.T) *Bundle {
	t.Helper()
	m, err := Train(separableSet(), DefaultParams(), nil)
	require.NoError(t, err)
	return &Bundle{
		Version:   BundleVersion,
		TrainedAt: time.Now().UTC(),
		Model:     m,
		Encoders: feature.Encoders{
			Location: feature.FitEncoder([]string{"Austin", "Portland"}),
			Store:    feature.FitEncoder([]string{"Acme Corp", "Globex"}),
		},
	}
}

func TestBundleRoundTrip(t *testing.T) {
	bundle := trainedBundle(t)
	path := filepath.Join(t.TempDir(), "model.gob")

	require.NoError(t, SaveBundle(path, bundle))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	got, err := LoadBundle(path)
	require.NoError(t, err)

	// Fitted parameters survive exactly; predictions must be identical.
	assert.Equal(t, bundle.Model.Weights, got.Model.Weights)
	assert.Equal(t, bundle.Model.Bias, got.Model.Bias)
	assert.Equal(t, bundle.Model.Means, got.Model.Means)
	assert.Equal(t, bundle.Model.Scales, got.Model.Scales)
	assert.Equal(t, bundle.Model.Columns, got.Model.Columns)

	for _, row := range separableSet().X {
		assert.Equal(t, bundle.Model.Predict(row), got.Model.Predict(row), "row %v", row)
	}

	// Encoders come back with working lookups.
	code, ok := got.Encoders.Location.Code("Portland")
	require.True(t, ok)
	assert.Equal(t, 1, code)
	code, ok = got.Encoders.Store.Code("Acme Corp")
	require.True(t, ok)
	assert.Equal(t, 0, code)
}

func TestSaveBundle_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	bundle := trainedBundle(t)

	require.NoError(t, SaveBundle(path, bundle))

	bundle.Model.Bias = 99
	require.NoError(t, SaveBundle(path, bundle))

	got, err := LoadBundle(path)
	require.NoError(t, err)
	assert.Equal(t, 99.0, got.Model.Bias)
}

func TestSaveBundle_MissingDir(t *testing.T) {
	// The destination directory is never created by the persister.
	path := filepath.Join(t.TempDir(), "models", "model.gob")
	err := SaveBundle(path, trainedBundle(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelPersist)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadBundle_VersionMismatch(t *testing.T) {
	bundle := trainedBundle(t)
	bundle.Version = BundleVersion + 1

	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, SaveBundle(path, bundle))

	_, err := LoadBundle(path)
	assert.ErrorIs(t, err, ErrBundleVersion)
}

func TestLoadBundle_NotFound(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "missing.gob"))
	assert.Error(t, err)
}

func TestLoadBundle_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0o644))

	_, err := LoadBundle(path)
	assert.Error(t, err)
}
