package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/peter-kozarec/gbce/pkg/calc"
	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/tools/book"
	"github.com/peter-kozarec/gbce/pkg/tools/store"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

var referenceTime = time.Date(2018, 9, 9, 16, 45, 30, 0, time.UTC)

func createTestAudit(t *testing.T) *Audit {
	t.Helper()
	logger := zaptest.NewLogger(t)

	commonStock := common.MustNewInstrument("ABCD", common.InstrumentKindCommon, fixed.Hundred, fixed.FromInt64(8, 0), fixed.Zero, fixed.Hundred)
	preferredStock := common.MustNewInstrument("EFGH", common.InstrumentKindPreferred, fixed.Hundred, fixed.FromInt64(8, 0), fixed.FromFloat64(0.02), fixed.Hundred)
	idleStock := common.MustNewInstrument("IDLE", common.InstrumentKindCommon, fixed.Zero, fixed.Zero, fixed.Zero, fixed.Hundred)

	trades := book.NewTradeBook(logger)
	for _, ts := range []time.Time{
		time.Date(2018, 9, 9, 16, 30, 29, 0, time.UTC),
		time.Date(2018, 9, 9, 16, 30, 30, 0, time.UTC),
		time.Date(2018, 9, 9, 16, 30, 31, 0, time.UTC),
	} {
		trades.Record(common.MustNewTrade(commonStock, ts, 200, common.TradeSideBuy, fixed.FromInt64(150, 0)))
	}
	for i := 0; i < 3; i++ {
		trades.Record(common.MustNewTrade(preferredStock, referenceTime, 300, common.TradeSideSell, fixed.FromInt64(200, 0)))
	}

	return NewAudit(
		calc.NewCalculator(logger),
		store.CreateInstrumentStore(commonStock, preferredStock, idleStock),
		trades)
}

func TestAudit_GenerateReport(t *testing.T) {
	report, err := createTestAudit(t).GenerateReport(referenceTime)
	if err != nil {
		t.Fatalf("GenerateReport() returned error: %v", err)
	}

	if report.TotalTrades != 6 {
		t.Errorf("expected 6 trades, got %d", report.TotalTrades)
	}
	if report.UnlistedTrades != 0 {
		t.Errorf("expected no unlisted trades, got %d", report.UnlistedTrades)
	}
	if report.Window != calc.DefaultWindow {
		t.Errorf("expected default window, got %v", report.Window)
	}
	if got := report.AllShareIndex.Round(2).String(); got != "173.21" {
		t.Errorf("AllShareIndex = %s; want 173.21", got)
	}

	tests := []struct {
		symbol              string
		dividendYield       string
		peRatio             string
		volumeWeightedPrice string
		trades              int
	}{
		// The 16:30:29 trade is one second outside the window.
		{"ABCD", "0.08", "1250", "150", 3},
		{"EFGH", "0.02", "5000", "200", 3},
		{"IDLE", "0", "0", "0", 0},
	}

	if len(report.Instruments) != len(tests) {
		t.Fatalf("expected %d instrument reports, got %d", len(tests), len(report.Instruments))
	}

	for idx, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got := report.Instruments[idx]
			if got.Symbol != tt.symbol {
				t.Fatalf("expected %s at position %d, got %s", tt.symbol, idx, got.Symbol)
			}
			if !got.DividendYield.Eq(fixed.MustParse(tt.dividendYield)) {
				t.Errorf("DividendYield = %s; want %s", got.DividendYield, tt.dividendYield)
			}
			if !got.PERatio.Eq(fixed.MustParse(tt.peRatio)) {
				t.Errorf("PERatio = %s; want %s", got.PERatio, tt.peRatio)
			}
			if !got.VolumeWeightedPrice.Eq(fixed.MustParse(tt.volumeWeightedPrice)) {
				t.Errorf("VolumeWeightedPrice = %s; want %s", got.VolumeWeightedPrice, tt.volumeWeightedPrice)
			}
			if got.Trades != tt.trades {
				t.Errorf("Trades = %d; want %d", got.Trades, tt.trades)
			}
		})
	}
}

func TestAudit_GenerateReportUnlistedTrades(t *testing.T) {
	audit := createTestAudit(t)
	unlisted := common.MustNewInstrument("JOE", common.InstrumentKindCommon, fixed.Hundred, fixed.Zero, fixed.Zero, fixed.Hundred)
	audit.trades.Record(common.MustNewTrade(unlisted, referenceTime, 10, common.TradeSideBuy, fixed.FromInt64(250, 0)))

	report, err := audit.GenerateReport(referenceTime)
	if err != nil {
		t.Fatalf("GenerateReport() returned error: %v", err)
	}
	if report.TotalTrades != 7 || report.UnlistedTrades != 1 {
		t.Errorf("expected 7 trades with 1 unlisted, got %d with %d", report.TotalTrades, report.UnlistedTrades)
	}
	if len(report.Instruments) != 3 {
		t.Errorf("unlisted instrument must not get its own report, got %d reports", len(report.Instruments))
	}
}

func TestAudit_GenerateReportMissingReference(t *testing.T) {
	_, err := createTestAudit(t).GenerateReport(time.Time{})
	if !errors.Is(err, calc.ErrCalculation) {
		t.Errorf("expected calculation error, got %v", err)
	}
}

func TestReport_Print(t *testing.T) {
	report, err := createTestAudit(t).GenerateReport(referenceTime)
	if err != nil {
		t.Fatalf("GenerateReport() returned error: %v", err)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	report.Print(zap.New(core))

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(entries))
	}

	summary := entries[3].ContextMap()
	if entries[3].Message != "market report" || summary["all_share_index"] != "173.21" {
		t.Errorf("unexpected summary entry %s %v", entries[3].Message, summary)
	}
	vwp, err := fixed.Parse(entries[0].ContextMap()["volume_weighted_price"].(string))
	if err != nil || !vwp.Eq(fixed.FromInt64(150, 0)) {
		t.Errorf("unexpected volume weighted price %v (%v)", vwp, err)
	}
}
