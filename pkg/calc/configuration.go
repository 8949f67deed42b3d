package calc

import "time"

type PreferredYieldBasis int

const (
	// PreferredYieldOnMarketPrice computes fixed dividend * par value / market price.
	PreferredYieldOnMarketPrice PreferredYieldBasis = iota
	// PreferredYieldOnPar computes fixed dividend * par value / par value, which
	// collapses to the fixed dividend rate. Kept for parity with legacy reports.
	PreferredYieldOnPar
)

const DefaultWindow = 15 * time.Minute

type Configuration struct {
	// Volume weighted price only considers trades at most Window older than the reference time
	Window time.Duration

	PreferredYieldBasis PreferredYieldBasis
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Window:              DefaultWindow,
		PreferredYieldBasis: PreferredYieldOnMarketPrice,
	}
}
