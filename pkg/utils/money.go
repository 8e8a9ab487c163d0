package utils

import "math"

// ToCents converts a decimal currency amount to integer cents, rounding to
// the nearest cent. Truncation is not safe here: 10.10 * 100 is 1009.99...
// in binary floating point.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
