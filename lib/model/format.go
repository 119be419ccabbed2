package model

import (
	"math"
	"strconv"
)

// valueWidth is the number of characters needed to print v with six
// decimal places: the integer digits, a sign for negative values, the
// decimal point and six fraction digits.
func valueWidth(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1 + 7
	}

	digits := len(strconv.FormatFloat(math.Trunc(math.Abs(v)), 'f', 0, 64))
	if math.Signbit(v) {
		digits++
	}
	return digits + 7
}
