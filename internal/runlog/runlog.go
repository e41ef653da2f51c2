package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the training run log.
type Entry struct {
	Timestamp time.Time
	RunID     string
	Rows      int
	Accuracy  float64
	ModelPath string
}

// Header is the CSV header for runs.csv.
const Header = "timestamp,run_id,rows,accuracy,model_path"

const (
	numFields    = 5
	logDir       = "logs"
	logFile      = "logs/runs.csv"
	colTimestamp = 0
	colRunID     = 1
	colRows      = 2
	colAccuracy  = 3
	colModelPath = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colRows] = strconv.Itoa(e.Rows)
	row[colAccuracy] = strconv.FormatFloat(e.Accuracy, 'f', 6, 64)
	row[colModelPath] = e.ModelPath
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	rows, err := strconv.Atoi(record[colRows])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows %q: %w", record[colRows], err)
	}

	accuracy, err := strconv.ParseFloat(record[colAccuracy], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing accuracy %q: %w", record[colAccuracy], err)
	}

	return Entry{
		Timestamp: ts,
		RunID:     record[colRunID],
		Rows:      rows,
		Accuracy:  accuracy,
		ModelPath: record[colModelPath],
	}, nil
}

// Append writes entries to <root>/logs/runs.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/runs.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
