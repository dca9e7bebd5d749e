package entity

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Value wraps a cell value scanned from a store and provides type
// conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	i, ok := v.Raw.(int64)
	if !ok {
		return 0, errors.Errorf("value is not an int64: %T", v.Raw)
	}
	return int(i), nil
}

// Decimal returns the value as a decimal.
func (v Value) Decimal() (decimal.Decimal, error) {
	s, ok := v.Raw.(string)
	if !ok {
		return decimal.Decimal{}, errors.Errorf("value is not a string: %T", v.Raw)
	}

	d, err := decimal.NewFromString(s)
	err = errors.Wrapf(err, "failed to parse decimal")
	return d, err
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}
