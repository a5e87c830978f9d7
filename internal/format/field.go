package format

import (
	"fmt"
	"math"
	"strconv"
)

// velocityField renders a velocity in km/s as f4.2: two decimals, minimum
// width four, so 5.8 -> "5.80" and 10.25 -> "10.25".
func velocityField(kmps float64) string {
	return fmt.Sprintf("%4.2f", kmps)
}

// depthField renders a depth in km together with its leading spacer.
// The legacy layout keeps the decimal point in a fixed column, so the field
// widens by one character (and the spacer shrinks by one) once the integer
// part needs a second digit or a sign. Negative zero counts as signed.
func depthField(km float64) string {
	signed := km < 0 || (km == 0 && math.Signbit(km))
	if signed || km >= 10 {
		return "       " + fmt.Sprintf("%5.2f", km)
	}
	return "        " + fmt.Sprintf("%4.2f", km)
}

// gridValue renders a grid coordinate or velocity using the shortest decimal
// representation that round-trips, with no padding. Grid output is
// pipe-delimited rather than fixed-column.
func gridValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
