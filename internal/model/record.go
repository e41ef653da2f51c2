package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record represents one credit card transaction row from the input CSV.
type Record struct {
	Date       time.Time
	Amount     decimal.Decimal
	Location   string // free-text city name
	Store      string // free-text merchant name
	Fraudulent bool   // target label
}
