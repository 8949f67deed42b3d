package book

import (
	"errors"
	"strings"

	"github.com/peter-kozarec/gbce/pkg/common"
	"go.uber.org/zap"
)

var (
	ErrTradeNotFound = errors.New("trade is not found")
)

// TradeBook records trades in arrival order. It is not safe for concurrent use.
type TradeBook struct {
	logger *zap.Logger
	trades []common.Trade
}

func NewTradeBook(logger *zap.Logger) *TradeBook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TradeBook{logger: logger}
}

func (b *TradeBook) Record(t common.Trade) {
	b.trades = append(b.trades, t)
	b.logger.Info("trade recorded", t.Fields()...)
}

func (b *TradeBook) Count() int {
	return len(b.trades)
}

func (b *TradeBook) Find(id common.TradeId) (common.Trade, error) {
	for _, trade := range b.trades {
		if trade.Id() == id {
			return trade, nil
		}
	}
	return common.Trade{}, ErrTradeNotFound
}

// Trades returns a copy of every recorded trade.
func (b *TradeBook) Trades() []common.Trade {
	return append([]common.Trade(nil), b.trades...)
}

// BySymbol returns a copy of the trades recorded against symbol, compared case-insensitively.
func (b *TradeBook) BySymbol(symbol string) []common.Trade {
	var trades []common.Trade
	for _, trade := range b.trades {
		if strings.EqualFold(trade.Symbol(), symbol) {
			trades = append(trades, trade)
		}
	}
	return trades
}
