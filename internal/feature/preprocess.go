package feature

import (
	"github.com/cardwatch-dev/cardwatch/internal/model"
)

// Feature column names of the derived matrix, in order. The raw Date column
// is replaced by its Year/Month/Day parts; Location and Store hold encoder
// codes rather than text.
var Columns = []string{
	model.ColAmount,
	model.ColLocation,
	model.ColStore,
	"Year",
	"Month",
	"Day",
}

const (
	idxAmount = 0
	idxLoc    = 1
	idxStore  = 2
	idxYear   = 3
	idxMonth  = 4
	idxDay    = 5
)

// Set holds a feature matrix and its aligned label vector. Row i of X and
// element i of Y always describe the same transaction.
type Set struct {
	Columns []string
	X       [][]float64
	Y       []float64 // 1 = fraudulent, 0 = legitimate
}

// Encoders holds the fitted categorical encoders for one preprocessing pass.
type Encoders struct {
	Location *Encoder
	Store    *Encoder
}

// Preprocess derives the feature set from raw records: Date expands to
// Year/Month/Day, Location and Store are label-encoded, Fraudulent becomes
// the label vector. The two encoders are fit independently over this input.
func Preprocess(records []model.Record) (*Set, Encoders) {
	locations := make([]string, len(records))
	stores := make([]string, len(records))
	for i, rec := range records {
		locations[i] = rec.Location
		stores[i] = rec.Store
	}

	enc := Encoders{
		Location: FitEncoder(locations),
		Store:    FitEncoder(stores),
	}

	s := &Set{
		Columns: Columns,
		X:       make([][]float64, len(records)),
		Y:       make([]float64, len(records)),
	}
	for i, rec := range records {
		locCode, _ := enc.Location.Code(rec.Location)
		storeCode, _ := enc.Store.Code(rec.Store)

		row := make([]float64, len(Columns))
		row[idxAmount] = rec.Amount.InexactFloat64()
		row[idxLoc] = float64(locCode)
		row[idxStore] = float64(storeCode)
		row[idxYear] = float64(rec.Date.Year())
		row[idxMonth] = float64(rec.Date.Month())
		row[idxDay] = float64(rec.Date.Day())
		s.X[i] = row

		if rec.Fraudulent {
			s.Y[i] = 1
		}
	}
	return s, enc
}

// Row builds a single feature row for one record using already-fitted
// encoders. Fails on categories the encoders never saw.
func Row(rec model.Record, enc Encoders) ([]float64, error) {
	locCode, ok := enc.Location.Code(rec.Location)
	if !ok {
		return nil, ErrUnknownCategory
	}
	storeCode, ok := enc.Store.Code(rec.Store)
	if !ok {
		return nil, ErrUnknownCategory
	}

	row := make([]float64, len(Columns))
	row[idxAmount] = rec.Amount.InexactFloat64()
	row[idxLoc] = float64(locCode)
	row[idxStore] = float64(storeCode)
	row[idxYear] = float64(rec.Date.Year())
	row[idxMonth] = float64(rec.Date.Month())
	row[idxDay] = float64(rec.Date.Day())
	return row, nil
}
