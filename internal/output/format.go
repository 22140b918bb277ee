package output

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultPrecision is the significant-digit count used by FormatDuration.
const DefaultPrecision = 3

var units = []struct {
	symbol string
	scale  float64
}{
	{"s", 1},
	{"ms", 1e3},
	{"µs", 1e6},
	{"ns", 1e9},
}

// FormatDuration returns a human-readable duration with an automatically
// chosen unit and three significant digits:
//
//	FormatDuration(50700 * time.Microsecond) // "50.7 ms"
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds(), DefaultPrecision, " ")
}

// FormatSeconds formats a duration given in seconds with the requested
// significant-digit precision and unit delimiter. Trailing zeros are kept
// ("12.0 s", "0.500 ns") but a bare trailing decimal point is not
// ("120 s").
func FormatSeconds(seconds float64, precision int, delimiter string) string {
	i := len(units) - 1
	if seconds > 0 {
		i = min(-floorDiv(int(math.Floor(math.Log10(seconds))), 3), i)
		if i < 0 {
			i = 0
		}
	}
	u := units[i]
	value := strings.TrimRight(fmt.Sprintf("%#.*g", precision, seconds*u.scale), ".")
	return value + delimiter + u.symbol
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
