package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
	"github.com/afroconnect/booking-service/pkg/types"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func appt(id string, day string, start string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		Date:      date(day),
		StartTime: types.TimeString(start),
		Status:    status,
	}
}

func ids(appts []*domain.Appointment) []string {
	out := make([]string, 0, len(appts))
	for _, a := range appts {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterByTab(t *testing.T) {
	appts := []*domain.Appointment{
		appt("a", "2025-01-10", "10:00", domain.StatusPending),
		appt("b", "2025-01-11", "10:00", domain.StatusConfirmed),
		appt("c", "2025-01-12", "10:00", domain.StatusCompleted),
		appt("d", "2025-01-13", "10:00", domain.StatusCancelled),
	}

	assert.Equal(t, []string{"a"}, ids(FilterByTab(appts, models.TabPending)))
	assert.Equal(t, []string{"b"}, ids(FilterByTab(appts, models.TabConfirmed)))
	assert.Equal(t, []string{"c"}, ids(FilterByTab(appts, models.TabCompleted)))
	assert.Len(t, FilterByTab(appts, models.TabAll), 4)
}

func TestFilterForCustomerPast(t *testing.T) {
	// Завершённая запись от 2025-01-05 и подтверждённая будущая от 2025-01-15:
	// в past попадает только первая.
	appts := []*domain.Appointment{
		appt("old", "2025-01-05", "10:00", domain.StatusCompleted),
		appt("future", "2025-01-15", "10:00", domain.StatusConfirmed),
	}

	got := FilterForCustomer(appts, models.ModePast, date("2025-01-10"))
	assert.Equal(t, []string{"old"}, ids(got))
}

func TestFilterForCustomerPastIncludesCompletedToday(t *testing.T) {
	appts := []*domain.Appointment{
		appt("done-today", "2025-01-10", "10:00", domain.StatusCompleted),
	}

	got := FilterForCustomer(appts, models.ModePast, date("2025-01-10"))
	assert.Equal(t, []string{"done-today"}, ids(got))
}

func TestFilterForCustomerUpcoming(t *testing.T) {
	appts := []*domain.Appointment{
		appt("later", "2025-01-20", "10:00", domain.StatusPending),
		appt("today", "2025-01-10", "09:00", domain.StatusConfirmed),
		appt("yesterday", "2025-01-09", "10:00", domain.StatusConfirmed),
		appt("cancelled", "2025-01-25", "10:00", domain.StatusCancelled),
		appt("done", "2025-01-12", "10:00", domain.StatusCompleted),
	}

	got := FilterForCustomer(appts, models.ModeUpcoming, date("2025-01-10"))
	// Только активные записи с датой >= today, по возрастанию даты.
	assert.Equal(t, []string{"today", "later"}, ids(got))
}

func TestFilterForCustomerCancelled(t *testing.T) {
	appts := []*domain.Appointment{
		appt("a", "2025-01-10", "10:00", domain.StatusPending),
		appt("b", "2025-01-12", "10:00", domain.StatusCancelled),
		appt("c", "2025-01-08", "10:00", domain.StatusCancelled),
	}

	got := FilterForCustomer(appts, models.ModeCancelled, date("2025-01-10"))
	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestFilterForCustomerPastSortedDescending(t *testing.T) {
	appts := []*domain.Appointment{
		appt("first", "2025-01-02", "10:00", domain.StatusCompleted),
		appt("third", "2025-01-06", "10:00", domain.StatusCompleted),
		appt("second", "2025-01-04", "10:00", domain.StatusCompleted),
	}

	got := FilterForCustomer(appts, models.ModePast, date("2025-01-10"))
	assert.Equal(t, []string{"third", "second", "first"}, ids(got))
}

func TestStatsTodayRevenue(t *testing.T) {
	today := date("2025-01-10")

	paid := appt("paid", "2025-01-10", "10:00", domain.StatusCompleted)
	paid.IsPaid = true
	paid.Service.Price = 150

	base := []*domain.Appointment{paid}
	require.Equal(t, 150.0, Stats(base, today).TodayRevenue)

	// Любое из трёх условий (completed, isPaid, date == today) исключает
	// запись из выручки.
	notPaid := *paid
	notPaid.IsPaid = false
	assert.Equal(t, 0.0, Stats([]*domain.Appointment{&notPaid}, today).TodayRevenue)

	notCompleted := *paid
	notCompleted.Status = domain.StatusConfirmed
	assert.Equal(t, 0.0, Stats([]*domain.Appointment{&notCompleted}, today).TodayRevenue)

	notToday := *paid
	notToday.Date = date("2025-01-09")
	assert.Equal(t, 0.0, Stats([]*domain.Appointment{&notToday}, today).TodayRevenue)
}

func TestStatsCounters(t *testing.T) {
	today := date("2025-01-10")

	appts := []*domain.Appointment{
		appt("a", "2025-01-10", "10:00", domain.StatusPending),
		appt("b", "2025-01-10", "11:00", domain.StatusConfirmed),
		appt("c", "2025-01-09", "10:00", domain.StatusPending),
		appt("d", "2025-01-08", "10:00", domain.StatusCompleted),
	}

	stats := Stats(appts, today)
	assert.Equal(t, 2, stats.TodayCount)
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 1, stats.TotalCompleted)
	assert.Equal(t, 0.0, stats.TodayRevenue)
}
