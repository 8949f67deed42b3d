package common

import "errors"

var (
	ErrEmptySymbol         = errors.New("symbol is empty")
	ErrUnknownKind         = errors.New("unknown instrument kind")
	ErrUnknownSide         = errors.New("unknown trade side")
	ErrNegativeValue       = errors.New("value must not be negative")
	ErrMissingInstrument   = errors.New("trade has no instrument")
	ErrMissingTimestamp    = errors.New("trade has no timestamp")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
)
