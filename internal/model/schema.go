package model

// Column names of the credit card record schema.
const (
	ColDate       = "Date"
	ColAmount     = "Amount"
	ColLocation   = "Location"
	ColStore      = "Store"
	ColFraudulent = "Fraudulent"
)

// Schema enumerates the required input columns, in order, and names the
// target label column. It is validated once, at load time.
type Schema struct {
	Columns []string
	Target  string
}

// DefaultSchema returns the credit card record schema.
func DefaultSchema() Schema {
	return Schema{
		Columns: []string{ColDate, ColAmount, ColLocation, ColStore, ColFraudulent},
		Target:  ColFraudulent,
	}
}

// Matches reports whether header exactly matches the schema columns.
func (s Schema) Matches(header []string) bool {
	if len(header) != len(s.Columns) {
		return false
	}
	for i, col := range s.Columns {
		if header[i] != col {
			return false
		}
	}
	return true
}
