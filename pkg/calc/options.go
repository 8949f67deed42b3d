package calc

import "time"

type CalculatorOption func(*Calculator)

func WithConfiguration(configuration Configuration) CalculatorOption {
	return func(c *Calculator) {
		c.configuration = configuration
	}
}

func WithWindow(window time.Duration) CalculatorOption {
	return func(c *Calculator) {
		c.configuration.Window = window
	}
}

func WithPreferredYieldBasis(basis PreferredYieldBasis) CalculatorOption {
	return func(c *Calculator) {
		c.configuration.PreferredYieldBasis = basis
	}
}

func WithClock(clock Clock) CalculatorOption {
	return func(c *Calculator) {
		c.clock = clock
	}
}
