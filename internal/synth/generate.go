// Package synth fabricates credit card records for exercising the training
// pipeline. All randomness flows through one seeded generator instance, so a
// fixed seed always yields the same dataset.
package synth

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/cardwatch-dev/cardwatch/internal/dataset"
	"github.com/cardwatch-dev/cardwatch/internal/model"
)

// Options controls synthetic record generation.
type Options struct {
	Rows int
	Seed uint64
}

// DefaultRows matches the size of the reference dataset.
const DefaultRows = 50

// Date range for generated transactions.
var (
	dateStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dateEnd   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Records generates opts.Rows fake transactions: city names for Location,
// company names for Store, amounts in [1, 1000), and a random label.
func Records(opts Options) []model.Record {
	f := gofakeit.New(opts.Seed)

	records := make([]model.Record, opts.Rows)
	for i := range records {
		date := f.DateRange(dateStart, dateEnd)
		records[i] = model.Record{
			Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromFloat(f.Price(1, 1000)),
			Location:   f.City(),
			Store:      f.Company(),
			Fraudulent: f.Bool(),
		}
	}
	return records
}

// WriteCSV generates records and writes them to path.
func WriteCSV(path string, opts Options) error {
	if opts.Rows <= 0 {
		return fmt.Errorf("row count must be positive, got %d", opts.Rows)
	}
	return dataset.Save(path, Records(opts))
}
