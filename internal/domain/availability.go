package domain

import "time"

// DaySchedule operating hours for a single weekday
type DaySchedule struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "09:00"
	CloseTime *string `json:"closeTime,omitempty"` // "18:00"
}

// WeeklyHours operating hours for every weekday
type WeeklyHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the schedule for the given weekday
func (w WeeklyHours) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// AvailabilityRule booking rules of a single business: operating hours,
// blocked dates and the stride at which candidate slots are generated.
type AvailabilityRule struct {
	ID                 int64
	BusinessID         int64
	Hours              WeeklyHours
	BlockedDates       []time.Time
	GranularityMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocked returns true if date is in the blocked list (dates compared
// by calendar day, time parts ignored)
func (r *AvailabilityRule) IsBlocked(date time.Time) bool {
	y, m, d := date.Date()
	for _, blocked := range r.BlockedDates {
		by, bm, bd := blocked.Date()
		if y == by && m == bm && d == bd {
			return true
		}
	}
	return false
}
