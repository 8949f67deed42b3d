package fixed

import (
	"github.com/govalues/decimal"
)

func Sum(points []Point) Point {
	sum := Zero
	for _, point := range points {
		sum = sum.Add(point)
	}
	return sum
}

func Mean(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}
	return Sum(points).DivInt(len(points))
}

// WeightedMean returns Σ(point·weight) / Σ(weight). Slices must have equal length.
// A zero total weight yields Zero. Both sums are decimal, so a total that does not
// fit panics instead of wrapping around.
func WeightedMean(points []Point, weights []int64) Point {
	if len(points) == 0 || len(points) != len(weights) {
		return Zero
	}

	sum := Zero
	totalWeight := Zero
	for idx, point := range points {
		sum = sum.Add(point.MulInt64(weights[idx]))
		totalWeight = totalWeight.Add(FromInt64(weights[idx], 0))
	}

	if totalWeight.IsZero() {
		return Zero
	}

	return sum.Div(totalWeight)
}

// GeometricMean is the nth root of the product of n points. The root is taken in log
// space, exp(mean(ln p)), so long series of large values never need the full product.
// When the product does fit, a log space result that rounds to an exact root is
// snapped to it, so a single 200 stays 200. Any zero point yields Zero.
// Panics on negative points.
func GeometricMean(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}

	logs := make([]Point, len(points))
	for idx, point := range points {
		if point.IsZero() {
			return Zero
		}
		logs[idx] = point.Log()
	}
	mean := Mean(logs).Exp()

	if root, ok := exactRoot(points, mean); ok {
		return root
	}
	return mean
}

// exactRoot reports whether approx, rounded to the finest scale among points, raised
// to len(points) reproduces their product exactly. Overflow or a product that
// underflowed to zero means no.
func exactRoot(points []Point, approx Point) (Point, bool) {
	product := decimal.One
	scale := 0
	for _, point := range points {
		var err error
		if product, err = product.Mul(point.v); err != nil {
			return Point{}, false
		}
		scale = max(scale, point.v.Scale())
	}
	if product.IsZero() {
		return Point{}, false
	}

	candidate := approx.v.Round(scale)
	power, err := candidate.PowInt(len(points))
	if err != nil || power.Cmp(product) != 0 {
		return Point{}, false
	}
	return Point{candidate}, true
}
