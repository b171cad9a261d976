package amortization

import "math"

// Truncate drops value to at most digits fractional digits, toward zero.
//
// Scaling and truncating directly misreads values such as 0.29, whose binary
// form scales to 28.999999999999996. Instead the value is rounded to digits
// places and, when that rounding moved it away from zero, stepped back by one
// unit in the last place.
func Truncate(value float64, digits int) float64 {
	scale := math.Pow10(digits)
	scaled := math.Round(value * scale)
	rounded := scaled / scale

	switch {
	case value > 0 && rounded > value:
		scaled--
	case value < 0 && rounded < value:
		scaled++
	}
	return scaled / scale
}

// Round rounds value to digits fractional digits, halves away from zero.
func Round(value float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(value*scale) / scale
}
