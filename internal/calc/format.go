package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders a value for display: whole numbers without a
// decimal point, everything else with up to four decimals, trailing
// zeros trimmed.
func FormatResult(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Help describes the calculator to the agent and its users.
func Help() string {
	return strings.TrimSpace(`
Available Calculator Functions:
- Basic: +, -, *, /, %, ^ (power), sqrt()
- Trigonometric: sin(), cos(), tan(), asin(), acos(), atan()
- Logarithmic: log(), ln(), log10(), log2()
- Statistical: mean, median, mode, standard deviation
- Advanced: factorial, prime check, GCD, LCM
- Conversions: temperature, length, weight, number bases
- Geometry: area and volume calculations
- Financial: simple/compound interest, percentages

Examples:
- Basic: "2 + 3 * 4"
- Trigonometric: "sin(pi/2)"
- Combined: "sqrt(16) + log(e)"
`)
}
