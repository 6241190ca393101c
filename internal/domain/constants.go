package domain

// Default availability rule values used when a business has not
// configured its own.
const (
	DefaultGranularityMinutes = 30
	DefaultOpenTime           = "09:00"
	DefaultCloseTime          = "18:00"
)

// Business validation constants
const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 240
	MinDurationMinutes    = 5
	MaxDurationMinutes    = 480 // 8 hours
	MaxReasonLength       = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupiedStatuses статусы, при которых запись занимает слот.
// Используется при проверке двойного бронирования.
var OccupiedStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses статусы, из которых переходы запрещены
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
