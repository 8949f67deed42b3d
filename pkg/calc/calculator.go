package calc

import (
	"fmt"
	"time"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

// Calculator derives market metrics from instruments and trades. It keeps no state
// between calls and never modifies its inputs.
//
// Degenerate arithmetic (division by zero, no trades) yields fixed.Zero and a nil error.
// Everything else that goes wrong is reported as ErrCalculation.
type Calculator struct {
	logger        *zap.Logger
	clock         Clock
	configuration Configuration
}

func NewCalculator(logger *zap.Logger, options ...CalculatorOption) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Calculator{
		logger:        logger,
		clock:         SystemClock{},
		configuration: DefaultConfiguration(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Calculator) Configuration() Configuration {
	return c.configuration
}

// DividendYield is last dividend / market price for common stock and
// fixed dividend * par value / market price for preferred stock.
func (c *Calculator) DividendYield(instrument common.Instrument) (result fixed.Point, err error) {
	defer c.recoverFault("dividend yield", &result, &err)

	if instrument.IsZero() {
		return fixed.Zero, fmt.Errorf("%w: dividend yield: %w", ErrCalculation, common.ErrMissingInstrument)
	}

	switch instrument.Kind() {
	case common.InstrumentKindCommon:
		return c.divOrZero(instrument, instrument.LastDividend(), instrument.MarketPrice()), nil
	case common.InstrumentKindPreferred:
		dividend := instrument.FixedDividend().Mul(instrument.ParValue())
		if c.configuration.PreferredYieldBasis == PreferredYieldOnPar {
			return c.divOrZero(instrument, dividend, instrument.ParValue()), nil
		}
		return c.divOrZero(instrument, dividend, instrument.MarketPrice()), nil
	default:
		return fixed.Zero, fmt.Errorf("%w: dividend yield of %s: %w", ErrCalculation, instrument.Symbol(), common.ErrUnknownKind)
	}
}

// PERatio is market price / dividend yield.
func (c *Calculator) PERatio(instrument common.Instrument) (result fixed.Point, err error) {
	dividendYield, err := c.DividendYield(instrument)
	if err != nil {
		return fixed.Zero, err
	}

	defer c.recoverFault("pe ratio", &result, &err)

	return c.divOrZero(instrument, instrument.MarketPrice(), dividendYield), nil
}

// VolumeWeightedPrice is VolumeWeightedPriceAt with the reference time sampled from the clock.
func (c *Calculator) VolumeWeightedPrice(trades []common.Trade) (fixed.Point, error) {
	return c.VolumeWeightedPriceAt(trades, c.clock.Now())
}

// VolumeWeightedPriceAt is Σ(price * quantity) / Σ(quantity) over trades recorded within
// the configured window before reference, boundary included. Trades are not filtered by
// instrument; pass a single instrument's trades for a per-stock price.
func (c *Calculator) VolumeWeightedPriceAt(trades []common.Trade, reference time.Time) (result fixed.Point, err error) {
	defer c.recoverFault("volume weighted price", &result, &err)

	if reference.IsZero() {
		return fixed.Zero, fmt.Errorf("%w: volume weighted price: reference time is not set", ErrCalculation)
	}

	if len(trades) == 0 {
		c.logger.Debug("no trades for volume weighted price")
		return fixed.Zero, nil
	}

	prices := make([]fixed.Point, 0, len(trades))
	quantities := make([]int64, 0, len(trades))
	for idx, trade := range trades {
		if err := validateTrade("volume weighted price", idx, trade); err != nil {
			return fixed.Zero, err
		}
		if !c.withinWindow(trade.Timestamp(), reference) {
			continue
		}
		prices = append(prices, trade.Price())
		quantities = append(quantities, trade.Quantity())
	}

	if len(prices) == 0 {
		c.logger.Debug("no trades within window",
			zap.Time("reference", reference),
			zap.Duration("window", c.configuration.Window),
			zap.Int("trades", len(trades)))
	}

	return fixed.WeightedMean(prices, quantities), nil
}

// AllShareIndex is the geometric mean of all trade prices, irrespective of instrument or time.
func (c *Calculator) AllShareIndex(trades []common.Trade) (result fixed.Point, err error) {
	defer c.recoverFault("all share index", &result, &err)

	if len(trades) == 0 {
		c.logger.Debug("no trades for all share index")
		return fixed.Zero, nil
	}

	prices := make([]fixed.Point, len(trades))
	for idx, trade := range trades {
		if err := validateTrade("all share index", idx, trade); err != nil {
			return fixed.Zero, err
		}
		prices[idx] = trade.Price()
	}

	return fixed.GeometricMean(prices), nil
}

// validateTrade rejects trades that did not come from common.NewTrade.
func validateTrade(operation string, idx int, trade common.Trade) error {
	if trade.Instrument().IsZero() {
		return fmt.Errorf("%w: %s: trade %d: %w", ErrCalculation, operation, idx, common.ErrMissingInstrument)
	}
	return nil
}

func (c *Calculator) withinWindow(timestamp, reference time.Time) bool {
	elapsed := reference.Sub(timestamp)
	if elapsed < 0 {
		return false
	}
	return elapsed.Truncate(time.Second) <= c.configuration.Window
}

func (c *Calculator) divOrZero(instrument common.Instrument, numerator, denominator fixed.Point) fixed.Point {
	if denominator.IsZero() {
		c.logger.Debug("division by zero, defaulting to zero", instrument.Fields()...)
		return fixed.Zero
	}
	return numerator.Div(denominator)
}

// recoverFault turns a fixed point panic (overflow, invalid operand) into ErrCalculation.
func (c *Calculator) recoverFault(operation string, result *fixed.Point, err *error) {
	if r := recover(); r != nil {
		c.logger.Warn("calculation fault", zap.String("operation", operation), zap.Any("cause", r))
		*result = fixed.Zero
		*err = fmt.Errorf("%w: %s: %v", ErrCalculation, operation, r)
	}
}
