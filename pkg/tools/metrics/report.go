package metrics

import (
	"time"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

const reportScale = 2

type InstrumentReport struct {
	Symbol              string
	Kind                common.InstrumentKind
	MarketPrice         fixed.Point
	DividendYield       fixed.Point
	PERatio             fixed.Point
	VolumeWeightedPrice fixed.Point
	Trades              int
}

type Report struct {
	ReferenceTime  time.Time
	Window         time.Duration
	TotalTrades    int
	UnlistedTrades int
	AllShareIndex  fixed.Point
	Instruments    []InstrumentReport
}

func (r Report) Print(logger *zap.Logger) {
	for _, instrument := range r.Instruments {
		logger.Info("instrument report",
			zap.String("symbol", instrument.Symbol),
			zap.Stringer("kind", instrument.Kind),
			zap.String("market_price", instrument.MarketPrice.String()),
			zap.String("dividend_yield", instrument.DividendYield.String()),
			zap.String("pe_ratio", instrument.PERatio.Round(reportScale).String()),
			zap.String("volume_weighted_price", instrument.VolumeWeightedPrice.Round(reportScale).String()),
			zap.Int("trades", instrument.Trades))
	}

	logger.Info("market report",
		zap.Time("reference_time", r.ReferenceTime),
		zap.Duration("window", r.Window),
		zap.Int("total_trades", r.TotalTrades),
		zap.Int("unlisted_trades", r.UnlistedTrades),
		zap.String("all_share_index", r.AllShareIndex.Round(reportScale).String()))
}
