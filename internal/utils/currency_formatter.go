package utils

import "github.com/shopspring/decimal"

// FormatMinorUnits renders an integer amount kept in minor units with the
// given number of decimal places, e.g. 4536 with 2 places is "45.36".
// No float conversion happens, so the full int64 range formats exactly.
func FormatMinorUnits(amount int64, minorUnits int32) string {
	return decimal.New(amount, -minorUnits).StringFixed(minorUnits)
}
