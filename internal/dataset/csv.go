package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardwatch-dev/cardwatch/internal/model"
)

// Header is the CSV header for credit card record files.
const Header = "Date,Amount,Location,Store,Fraudulent"

const (
	numFields  = 5
	dateFormat = "2006-01-02"
	colDate    = 0
	colAmount  = 1
	colLoc     = 2
	colStore   = 3
	colFraud   = 4
)

// Load reads records from the CSV file at path.
func Load(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadRecords reads all records from a CSV reader. The first row must be the
// schema header; it is validated before any row is parsed.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrSchemaMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !model.DefaultSchema().Matches(header) {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrSchemaMismatch, strings.Join(header, ","), Header)
	}

	cr.FieldsPerRecord = numFields

	var records []model.Record
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		record, err := UnmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteRecords writes records to a CSV writer (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Save writes records to the CSV file at path, overwriting any existing file.
func Save(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return err
	}
	return f.Close()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date.Format(dateFormat)
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colLoc] = rec.Location
	row[colStore] = rec.Store
	row[colFraud] = strconv.FormatBool(rec.Fraudulent)
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(record []string) (model.Record, error) {
	if len(record) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %q", ErrDateParse, record[colDate])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	// Accepts both Go's "true" and pandas-style "True".
	fraud, err := strconv.ParseBool(record[colFraud])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing label %q: %w", record[colFraud], err)
	}

	return model.Record{
		Date:       date,
		Amount:     amount,
		Location:   record[colLoc],
		Store:      record[colStore],
		Fraudulent: fraud,
	}, nil
}
