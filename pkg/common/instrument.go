package common

import (
	"fmt"

	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

type InstrumentKind int

const (
	InstrumentKindCommon InstrumentKind = iota
	InstrumentKindPreferred
)

func (k InstrumentKind) String() string {
	switch k {
	case InstrumentKindCommon:
		return "Common"
	case InstrumentKindPreferred:
		return "Preferred"
	default:
		return fmt.Sprintf("InstrumentKind(%d)", int(k))
	}
}

func (k InstrumentKind) Valid() bool {
	return k == InstrumentKindCommon || k == InstrumentKindPreferred
}

// Instrument is a stock and its dividend parameters. Monetary values are in pennies.
// FixedDividend is a ratio and only meaningful for preferred stock; LastDividend
// only for common stock. Instrument cannot be changed once created.
type Instrument struct {
	symbol        string
	kind          InstrumentKind
	marketPrice   fixed.Point
	lastDividend  fixed.Point
	fixedDividend fixed.Point
	parValue      fixed.Point
}

func NewInstrument(symbol string, kind InstrumentKind, marketPrice, lastDividend, fixedDividend, parValue fixed.Point) (Instrument, error) {
	if symbol == "" {
		return Instrument{}, ErrEmptySymbol
	}
	if !kind.Valid() {
		return Instrument{}, fmt.Errorf("unable to create instrument %s: %w", symbol, ErrUnknownKind)
	}
	for _, field := range []struct {
		name  string
		value fixed.Point
	}{
		{"market price", marketPrice},
		{"last dividend", lastDividend},
		{"fixed dividend", fixedDividend},
		{"par value", parValue},
	} {
		if field.value.IsNeg() {
			return Instrument{}, fmt.Errorf("unable to create instrument %s, %s is %s: %w", symbol, field.name, field.value, ErrNegativeValue)
		}
	}

	return Instrument{
		symbol:        symbol,
		kind:          kind,
		marketPrice:   marketPrice,
		lastDividend:  lastDividend,
		fixedDividend: fixedDividend,
		parValue:      parValue,
	}, nil
}

func MustNewInstrument(symbol string, kind InstrumentKind, marketPrice, lastDividend, fixedDividend, parValue fixed.Point) Instrument {
	instrument, err := NewInstrument(symbol, kind, marketPrice, lastDividend, fixedDividend, parValue)
	if err != nil {
		panic(err.Error())
	}
	return instrument
}

func (i Instrument) Symbol() string             { return i.symbol }
func (i Instrument) Kind() InstrumentKind       { return i.kind }
func (i Instrument) MarketPrice() fixed.Point   { return i.marketPrice }
func (i Instrument) LastDividend() fixed.Point  { return i.lastDividend }
func (i Instrument) FixedDividend() fixed.Point { return i.fixedDividend }
func (i Instrument) ParValue() fixed.Point      { return i.parValue }

// IsZero reports whether the instrument was never constructed.
func (i Instrument) IsZero() bool { return i.symbol == "" }

func (i Instrument) Fields() []zap.Field {
	return []zap.Field{
		zap.String("symbol", i.symbol),
		zap.Stringer("kind", i.kind),
		zap.String("market_price", i.marketPrice.String()),
		zap.String("last_dividend", i.lastDividend.String()),
		zap.String("fixed_dividend", i.fixedDividend.String()),
		zap.String("par_value", i.parValue.String()),
	}
}
