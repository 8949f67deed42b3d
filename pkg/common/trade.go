package common

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

type TradeId = uuid.UUID
type TradeSide int

const (
	TradeSideBuy TradeSide = iota
	TradeSideSell
)

const tradeTimeLayout = "2006-01-02 15:04:05"

func (s TradeSide) String() string {
	switch s {
	case TradeSideBuy:
		return "Buy"
	case TradeSideSell:
		return "Sell"
	default:
		return fmt.Sprintf("TradeSide(%d)", int(s))
	}
}

func (s TradeSide) Valid() bool {
	return s == TradeSideBuy || s == TradeSideSell
}

// Trade is a single execution against an instrument. The side is informational only.
type Trade struct {
	id         TradeId
	instrument Instrument
	timestamp  time.Time
	quantity   int64
	side       TradeSide
	price      fixed.Point
}

func NewTrade(instrument Instrument, timestamp time.Time, quantity int64, side TradeSide, price fixed.Point) (Trade, error) {
	if instrument.IsZero() {
		return Trade{}, ErrMissingInstrument
	}
	if timestamp.IsZero() {
		return Trade{}, fmt.Errorf("unable to create trade for %s: %w", instrument.Symbol(), ErrMissingTimestamp)
	}
	if quantity <= 0 {
		return Trade{}, fmt.Errorf("unable to create trade for %s, quantity is %d: %w", instrument.Symbol(), quantity, ErrNonPositiveQuantity)
	}
	if !side.Valid() {
		return Trade{}, fmt.Errorf("unable to create trade for %s: %w", instrument.Symbol(), ErrUnknownSide)
	}
	if price.IsNeg() {
		return Trade{}, fmt.Errorf("unable to create trade for %s, price is %s: %w", instrument.Symbol(), price, ErrNegativeValue)
	}

	return Trade{
		id:         uuid.Must(uuid.NewV7()),
		instrument: instrument,
		timestamp:  timestamp,
		quantity:   quantity,
		side:       side,
		price:      price,
	}, nil
}

func MustNewTrade(instrument Instrument, timestamp time.Time, quantity int64, side TradeSide, price fixed.Point) Trade {
	trade, err := NewTrade(instrument, timestamp, quantity, side, price)
	if err != nil {
		panic(err.Error())
	}
	return trade
}

func (t Trade) Id() TradeId            { return t.id }
func (t Trade) Instrument() Instrument { return t.instrument }
func (t Trade) Symbol() string         { return t.instrument.Symbol() }
func (t Trade) Timestamp() time.Time   { return t.timestamp }
func (t Trade) Quantity() int64        { return t.quantity }
func (t Trade) Side() TradeSide        { return t.side }
func (t Trade) Price() fixed.Point     { return t.price }

// String renders the trade for display, the timestamp in its own location.
func (t Trade) String() string {
	return fmt.Sprintf("Stock Symbol: %s - Time: %s - Quantity: %d - Indicator: %s - Price: %s",
		t.instrument.Symbol(), t.timestamp.Format(tradeTimeLayout), t.quantity, t.side, t.price)
}

func (t Trade) Fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("id", t.id),
		zap.String("symbol", t.instrument.Symbol()),
		zap.Time("ts", t.timestamp),
		zap.Int64("quantity", t.quantity),
		zap.Stringer("side", t.side),
		zap.String("price", t.price.String()),
	}
}
