package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afroconnect/booking-service/internal/domain"
	availabilitySvc "github.com/afroconnect/booking-service/internal/service/availability"
	"github.com/afroconnect/booking-service/pkg/ptr"
	"github.com/afroconnect/booking-service/pkg/types"
)

type stubRepo struct {
	occupied []*domain.Appointment
}

func (s *stubRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.occupied, nil
}

type stubRules struct {
	rule *domain.AvailabilityRule
}

func (s *stubRules) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error) {
	if s.rule == nil {
		return nil, availabilitySvc.ErrRuleNotFound
	}
	return s.rule, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(repo *stubRepo, rules *stubRules, now time.Time) *UseCase {
	return &UseCase{
		apptRepo:     repo,
		rules:        rules,
		timeProvider: &fixedTime{now: now},
		logger:       nopLogger{},
	}
}

func slotStarts(slots []domain.AvailableSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime.String())
	}
	return out
}

func morningRule(businessID int64) *domain.AvailabilityRule {
	open := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("12:00"),
	}
	return &domain.AvailabilityRule{
		BusinessID: businessID,
		Hours: domain.WeeklyHours{
			Monday: open, Tuesday: open, Wednesday: open,
			Thursday: open, Friday: open, Saturday: open, Sunday: open,
		},
		GranularityMinutes: 30,
	}
}

var testNow = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

func TestExecuteMorningScenario(t *testing.T) {
	// Бизнес открыт 9:00-12:00, шаг 30 минут, услуга 30 минут,
	// одна подтвержденная запись на 10:00.
	occupied := &domain.Appointment{
		ID:         "existing",
		BusinessID: 10,
		StartTime:  types.TimeString("10:00"),
		Status:     domain.StatusConfirmed,
		Service:    domain.ServiceSnapshot{DurationMinutes: 30},
	}
	uc := newUseCase(&stubRepo{occupied: []*domain.Appointment{occupied}}, &stubRules{rule: morningRule(10)}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:      10,
		Date:            time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slotStarts(resp.Slots))
}

func TestExecutePastDateReturnsEmpty(t *testing.T) {
	uc := newUseCase(&stubRepo{}, &stubRules{rule: morningRule(10)}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:      10,
		Date:            time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteBlockedDateReturnsEmpty(t *testing.T) {
	rule := morningRule(10)
	rule.BlockedDates = []time.Time{time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}
	uc := newUseCase(&stubRepo{}, &stubRules{rule: rule}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:      10,
		Date:            time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteClosedDayReturnsEmpty(t *testing.T) {
	rule := morningRule(10)
	rule.Hours.Monday = domain.DaySchedule{IsOpen: false}
	uc := newUseCase(&stubRepo{}, &stubRules{rule: rule}, testNow)

	// 2025-06-16 — понедельник
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:      10,
		Date:            time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGenerateCandidateSlotsRespectsClose(t *testing.T) {
	day := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("12:00"),
	}

	// Услуга 45 минут: последний влезающий слот 11:00 (конец 11:45 < 12:00,
	// следующий кандидат 11:30 закончился бы в 12:15)
	slots, err := generateCandidateSlots(day, 30, 45)
	require.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.String())
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, starts)
}

func TestFilterOccupiedBoundaryTouchIsFree(t *testing.T) {
	occupied := []*domain.Appointment{{
		StartTime: types.TimeString("10:00"),
		Status:    domain.StatusPending,
		Service:   domain.ServiceSnapshot{DurationMinutes: 60},
	}}

	// [09:00,10:00) и [11:00,12:00) касаются занятого [10:00,11:00),
	// но не пересекаются с ним.
	candidates := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}
	got := filterOccupied(candidates, 60, occupied)
	assert.Equal(t, []string{"09:00", "11:00"}, slotStarts(got))
}

func TestFilterOccupiedIgnoresTerminalStatuses(t *testing.T) {
	occupied := []*domain.Appointment{
		{
			StartTime: types.TimeString("10:00"),
			Status:    domain.StatusCancelled,
			Service:   domain.ServiceSnapshot{DurationMinutes: 30},
		},
		{
			StartTime: types.TimeString("11:00"),
			Status:    domain.StatusCompleted,
			Service:   domain.ServiceSnapshot{DurationMinutes: 30},
		},
	}

	candidates := []types.TimeString{"10:00", "11:00"}
	got := filterOccupied(candidates, 30, occupied)
	assert.Equal(t, []string{"10:00", "11:00"}, slotStarts(got))
}

func TestFilterStartedSameDayOnly(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00"}
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Сегодня 10:30 — остаются только будущие слоты
	now := time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC)
	got := filterStarted(slots, date, now)
	assert.Equal(t, []types.TimeString{"11:00"}, got)

	// Для другой даты фильтр не применяется
	otherDay := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	got = filterStarted(slots, otherDay, now)
	assert.Equal(t, slots, got)
}
