package domain

import "math"

// scaleTable maps damage magnitude suffix codes to numeric multipliers.
// Defined once at init and never mutated; see the package documentation for
// the encoding conventions.
var scaleTable = map[string]float64{
	"H": 1e2, "h": 1e2,
	"K": 1e3, "k": 1e3,
	"M": 1e6, "m": 1e6,
	"B": 1e9, "b": 1e9,

	"0": 10, "1": 10, "2": 10, "3": 10, "4": 10,
	"5": 10, "6": 10, "7": 10, "8": 10,

	"+": 1,

	// "-" and "?" decode to zero for compatibility with the established
	// report; NOAA documents "?" as unknown magnitude, not zero.
	"-": 0, "?": 0, "": 0,
}

// DecodeScale returns the numeric multiplier for a magnitude suffix code.
// ok is false for codes outside the closed alphabet, which are data-entry
// defects rather than valid scales.
func DecodeScale(code string) (float64, bool) {
	mult, ok := scaleTable[code]
	return mult, ok
}

// ScaleMagnitude multiplies a base damage figure by its decoded scale.
// A zero base scales to zero regardless of code. An unmapped code with a
// nonzero base yields NaN so the completeness check can surface it.
func ScaleMagnitude(base float64, code string) float64 {
	if base == 0 {
		return 0
	}
	mult, ok := DecodeScale(code)
	if !ok {
		return math.NaN()
	}
	return base * mult
}
