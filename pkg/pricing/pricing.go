// Package pricing computes booking charges from hourly rates.
package pricing

import "math"

// Price returns the total charge for durationHours at hourlyRate.
// The result is rounded half-up to the smallest currency unit (0.01).
// The rate is snapshotted onto the booking by the caller, so a later
// catalog rate change never affects an existing charge.
func Price(hourlyRate float64, durationHours int) float64 {
	total := hourlyRate * float64(durationHours)
	return math.Floor(total*100+0.5) / 100
}
