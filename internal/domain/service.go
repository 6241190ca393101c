package domain

// ServiceSnapshot is a copy of a bookable offering embedded into an
// appointment at booking time. The live BusinessService belongs to an
// external catalog; only the fields needed for history live here.
type ServiceSnapshot struct {
	ServiceID       int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Currency        string
	Category        string
	// IsActive is the catalog flag at booking time. Inactive services
	// cannot be newly booked but stay valid on historical appointments.
	IsActive bool
}
