package calc

import "errors"

var (
	ErrCalculation = errors.New("calculation failed")
)
