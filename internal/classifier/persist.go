package classifier

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cardwatch-dev/cardwatch/internal/feature"
)

// BundleVersion is the current serialization format version.
const BundleVersion = 1

var (
	// ErrModelPersist is returned when the artifact cannot be written. The
	// destination directory is never created here; that is the caller's
	// responsibility (cardwatch init sets it up).
	ErrModelPersist = errors.New("persisting model")
	// ErrBundleVersion is returned when loading an artifact written by an
	// incompatible format version.
	ErrBundleVersion = errors.New("incompatible model bundle version")
)

// Bundle is the persisted artifact: the fitted model together with the
// categorical encoders it was trained with, so codes stay consistent between
// training and any later scoring.
type Bundle struct {
	Version   int
	TrainedAt time.Time
	Model     *Model
	Encoders  feature.Encoders
}

// SaveBundle gob-encodes the bundle to path, overwriting any existing file.
func SaveBundle(path string, b *Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrModelPersist, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(b); err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrModelPersist, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrModelPersist, err)
	}
	return nil
}

// LoadBundle reads a bundle written by SaveBundle.
func LoadBundle(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model bundle: %w", err)
	}
	defer f.Close()

	var b Bundle
	if err := gob.NewDecoder(f).Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding model bundle: %w", err)
	}
	if b.Version != BundleVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBundleVersion, b.Version, BundleVersion)
	}
	return &b, nil
}
