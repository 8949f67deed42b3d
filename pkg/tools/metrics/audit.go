package metrics

import (
	"fmt"
	"time"

	"github.com/peter-kozarec/gbce/pkg/calc"
	"github.com/peter-kozarec/gbce/pkg/tools/book"
	"github.com/peter-kozarec/gbce/pkg/tools/store"
)

type Audit struct {
	calculator  *calc.Calculator
	instruments store.InstrumentStore
	trades      *book.TradeBook
}

func NewAudit(calculator *calc.Calculator, instruments store.InstrumentStore, trades *book.TradeBook) *Audit {
	return &Audit{
		calculator:  calculator,
		instruments: instruments,
		trades:      trades,
	}
}

// GenerateReport evaluates every stored instrument against its own trades, and the
// all share index against every recorded trade.
func (a *Audit) GenerateReport(reference time.Time) (Report, error) {
	report := Report{
		ReferenceTime: reference,
		Window:        a.calculator.Configuration().Window,
		TotalTrades:   a.trades.Count(),
	}

	for _, instrument := range a.instruments.Instruments() {
		trades := a.trades.BySymbol(instrument.Symbol())

		dividendYield, err := a.calculator.DividendYield(instrument)
		if err != nil {
			return Report{}, fmt.Errorf("unable to audit %s: %w", instrument.Symbol(), err)
		}
		peRatio, err := a.calculator.PERatio(instrument)
		if err != nil {
			return Report{}, fmt.Errorf("unable to audit %s: %w", instrument.Symbol(), err)
		}
		vwp, err := a.calculator.VolumeWeightedPriceAt(trades, reference)
		if err != nil {
			return Report{}, fmt.Errorf("unable to audit %s: %w", instrument.Symbol(), err)
		}

		report.Instruments = append(report.Instruments, InstrumentReport{
			Symbol:              instrument.Symbol(),
			Kind:                instrument.Kind(),
			MarketPrice:         instrument.MarketPrice(),
			DividendYield:       dividendYield,
			PERatio:             peRatio,
			VolumeWeightedPrice: vwp,
			Trades:              len(trades),
		})
	}

	// Trades of instruments missing from the store still count towards the index.
	for _, trade := range a.trades.Trades() {
		if !a.instruments.Contains(trade.Symbol()) {
			report.UnlistedTrades++
		}
	}

	index, err := a.calculator.AllShareIndex(a.trades.Trades())
	if err != nil {
		return Report{}, fmt.Errorf("unable to audit all share index: %w", err)
	}
	report.AllShareIndex = index

	return report, nil
}
