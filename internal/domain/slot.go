package domain

import "github.com/afroconnect/booking-service/pkg/types"

// AvailableSlot represents a bookable time window of length equal to the
// requested service duration
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}
