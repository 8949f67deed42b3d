package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peter-kozarec/gbce/pkg/common"
)

var (
	ErrSymbolNotPresent = errors.New("symbol is not present in instrument table")
)

// InstrumentStore is a read-only lookup table. Symbol uniqueness is not enforced,
// the first matching instrument wins.
type InstrumentStore struct {
	instruments []common.Instrument
}

func CreateInstrumentStore(instruments ...common.Instrument) InstrumentStore {
	return InstrumentStore{
		instruments: append([]common.Instrument(nil), instruments...),
	}
}

func (s InstrumentStore) Contains(symbol string) bool {
	if _, err := s.Get(symbol); err != nil {
		return false
	}
	return true
}

func (s InstrumentStore) Get(symbol string) (common.Instrument, error) {
	for _, instrument := range s.instruments {
		if strings.EqualFold(instrument.Symbol(), symbol) {
			return instrument, nil
		}
	}
	return common.Instrument{}, fmt.Errorf("unable to get instrument with symbol %s: %w", symbol, ErrSymbolNotPresent)
}

func (s InstrumentStore) Instruments() []common.Instrument {
	return append([]common.Instrument(nil), s.instruments...)
}
