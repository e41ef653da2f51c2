package feature

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwatch-dev/cardwatch/internal/model"
)

func record(y, m, d int, amount, loc, store string, fraud bool) model.Record {
	a, _ := decimal.NewFromString(amount)
	return model.Record{
		Date:       time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC),
		Amount:     a,
		Location:   loc,
		Store:      store,
		Fraudulent: fraud,
	}
}

func TestPreprocess(t *testing.T) {
	records := []model.Record{
		record(2024, 3, 15, "127.50", "Portland", "Globex", true),
		record(2023, 11, 2, "9.99", "Austin", "Acme Corp", false),
		record(2024, 3, 15, "850.00", "Portland", "Acme Corp", true),
	}

	s, enc := Preprocess(records)

	assert.Equal(t, []string{"Amount", "Location", "Store", "Year", "Month", "Day"}, s.Columns)
	require.Len(t, s.X, 3)
	require.Len(t, s.Y, 3)

	// No Date column; Year/Month/Day reconstruct the original date.
	assert.NotContains(t, s.Columns, "Date")
	for i, rec := range records {
		row := s.X[i]
		got := time.Date(int(row[idxYear]), time.Month(row[idxMonth]), int(row[idxDay]), 0, 0, 0, 0, time.UTC)
		assert.True(t, rec.Date.Equal(got), "row %d date mismatch", i)
	}

	// Codes come from sorted distinct values: Austin=0, Portland=1.
	assert.Equal(t, 1.0, s.X[0][idxLoc])
	assert.Equal(t, 0.0, s.X[1][idxLoc])
	// Acme Corp=0, Globex=1.
	assert.Equal(t, 1.0, s.X[0][idxStore])
	assert.Equal(t, 0.0, s.X[2][idxStore])

	// Labels stay aligned with rows.
	assert.Equal(t, []float64{1, 0, 1}, s.Y)

	assert.InDelta(t, 127.50, s.X[0][idxAmount], 1e-9)

	// Encoders are fit independently over each column.
	assert.Equal(t, []string{"Austin", "Portland"}, enc.Location.Classes)
	assert.Equal(t, []string{"Acme Corp", "Globex"}, enc.Store.Classes)
}

func TestPreprocess_Empty(t *testing.T) {
	s, _ := Preprocess(nil)
	assert.Empty(t, s.X)
	assert.Empty(t, s.Y)
}

func TestRow(t *testing.T) {
	records := []model.Record{
		record(2024, 3, 15, "127.50", "Portland", "Globex", true),
		record(2023, 11, 2, "9.99", "Austin", "Acme Corp", false),
	}
	s, enc := Preprocess(records)

	// Row must agree with Preprocess for in-vocabulary records.
	row, err := Row(records[0], enc)
	require.NoError(t, err)
	assert.Equal(t, s.X[0], row)

	_, err = Row(record(2024, 1, 1, "5.00", "Tulsa", "Globex", false), enc)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
