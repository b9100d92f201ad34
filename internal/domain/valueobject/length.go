// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods return new instances rather than modifying state
package valueobject

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Traditional survey unit ratios.
const (
	// MetersPerBuhol is the length of one buhol in meters.
	MetersPerBuhol = 50

	// BuholPerTali is the number of buhol in one tali.
	BuholPerTali = 10
)

// BuholToMeters converts a length in buhol to meters.
// The input is not validated; negative and NaN values pass through.
//
// Parameters:
//   - buhol: length in buhol
//
// Returns:
//   - float64: length in meters
func BuholToMeters(buhol float64) float64 {
	return buhol * MetersPerBuhol
}

// BuholToTali converts a length in buhol to tali at full precision.
//
// Parameters:
//   - buhol: length in buhol
//
// Returns:
//   - float64: length in tali
func BuholToTali(buhol float64) float64 {
	return buhol / BuholPerTali
}

// FormatTali renders a buhol length as tali with one decimal place.
func FormatTali(buhol float64) string {
	return formatFixed(BuholToTali(buhol), 1)
}

// formatFixed rounds half away from zero. decimal cannot represent NaN or
// infinities, so those fall back to strconv.
func formatFixed(value float64, places int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return decimal.NewFromFloat(value).StringFixed(places)
}
