package fixed

import (
	"github.com/govalues/decimal"
)

// Point is a decimal amount: prices in pennies, dividend rates and yields as plain
// ratios. Arithmetic panics when the result does not fit into 19 significant digits
// or is undefined; callers that accept untrusted input recover at their boundary.
type Point struct {
	v decimal.Decimal
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

func FromFloat64(value float64) Point {
	return Point{must(decimal.NewFromFloat64(value))}
}

// Parse is the only constructor that reports malformed input instead of panicking.
func Parse(s string) (Point, error) {
	v, err := decimal.Parse(s)
	if err != nil {
		return Point{}, err
	}
	return Point{v}, nil
}

func MustParse(s string) Point {
	return Point{must(decimal.Parse(s))}
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }

func (p Point) Add(o Point) Point      { return Point{must(p.v.Add(o.v))} }
func (p Point) Mul(o Point) Point      { return Point{must(p.v.Mul(o.v))} }
func (p Point) Div(o Point) Point      { return Point{must(p.v.Quo(o.v))} }
func (p Point) MulInt64(o int64) Point { return p.Mul(FromInt64(o, 0)) }
func (p Point) DivInt(o int) Point     { return p.Div(FromInt64(int64(o), 0)) }

func (p Point) Eq(o Point) bool { return p.v.Cmp(o.v) == 0 }
func (p Point) IsZero() bool    { return p.v.IsZero() }
func (p Point) IsNeg() bool     { return p.v.IsNeg() }

// Round rounds half to even to the given number of decimal places.
func (p Point) Round(scale int) Point { return Point{p.v.Round(scale)} }

// Log returns the natural logarithm. Panics for non-positive values.
func (p Point) Log() Point { return Point{must(p.v.Log())} }
func (p Point) Exp() Point { return Point{must(p.v.Exp())} }

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err != nil {
		panic(err)
	}
	return v
}
