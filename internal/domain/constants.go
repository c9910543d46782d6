package domain

// Booking duration limits: whole hours from 1 to 6
const (
	MinutesPerHour     = 60
	MinDurationMinutes = 60
	MaxDurationMinutes = 360
	MinDurationHours   = 1
	MaxDurationHours   = 6
)

// Slot grid defaults
const (
	DefaultSlotGranularityMinutes = 60
	MinSlotGranularityMinutes     = 15
	MaxSlotGranularityMinutes     = 240
	DefaultSlotDurationMinutes    = 60
)

// Business validation constants
const (
	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
