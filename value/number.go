package value

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f with the shortest decimal text that round trips.
// Exponent notation is used only for magnitudes below 1e-6 or at and above
// 1e21, and the exponent carries no leading zeros ("1e-7", "1e+21").
func FormatFloat(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	a := math.Abs(f)
	if a < 1e21 && a >= 1e-6 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
