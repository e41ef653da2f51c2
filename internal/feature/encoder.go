package feature

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCategory is returned when transforming a value the encoder never
// saw at fit time.
var ErrUnknownCategory = errors.New("unknown category")

// Encoder is a fitted mapping from categorical text values to integer codes.
// Codes are assigned by sorting the distinct values seen at fit time, so a
// given input set always produces the same mapping.
//
// Only Classes is serialized; the lookup map is rebuilt on first use.
type Encoder struct {
	Classes []string

	codes map[string]int
}

// FitEncoder builds an Encoder over the distinct values in the input.
func FitEncoder(values []string) *Encoder {
	seen := make(map[string]struct{}, len(values))
	var classes []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sort.Strings(classes)
	return &Encoder{Classes: classes}
}

// Code returns the integer code for value and whether it was seen at fit time.
func (e *Encoder) Code(value string) (int, bool) {
	if e.codes == nil {
		e.codes = make(map[string]int, len(e.Classes))
		for i, c := range e.Classes {
			e.codes[c] = i
		}
	}
	code, ok := e.codes[value]
	return code, ok
}

// Transform maps values to their codes. Fails on values not seen at fit time.
func (e *Encoder) Transform(values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		code, ok := e.Code(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, v)
		}
		out[i] = float64(code)
	}
	return out, nil
}
