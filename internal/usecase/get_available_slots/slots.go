package get_available_slots

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/pkg/types"
)

// generateCandidateSlots генерирует кандидатов по рабочим часам дня:
// шаг granularity от открытия, слот длиной duration не должен выходить
// за время закрытия.
func generateCandidateSlots(day domain.DaySchedule, granularityMinutes, durationMinutes int) ([]types.TimeString, error) {
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(*day.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(*day.CloseTime)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		if end.IsAfter(closeTime) {
			break
		}

		slots = append(slots, current)
		current, err = current.AddMinutes(granularityMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// filterOccupied оставляет слоты, не пересекающиеся ни с одной активной
// записью. Интервалы полуоткрытые: [a,b) и [c,d) пересекаются <=>
// a < d && c < b, граничащие слоты не конфликтуют.
func filterOccupied(candidates []types.TimeString, durationMinutes int, appointments []*domain.Appointment) []domain.AvailableSlot {
	available := make([]domain.AvailableSlot, 0, len(candidates))

	for _, start := range candidates {
		if isOccupied(start, durationMinutes, appointments) {
			continue
		}
		available = append(available, domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
		})
	}

	return available
}

func isOccupied(start types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return true
	}

	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}

		apptStart := appt.StartTime
		apptEnd, err := appt.StartTime.AddMinutes(appt.Service.DurationMinutes)
		if err != nil {
			continue
		}

		if apptStart.IsBefore(end) && apptEnd.IsAfter(start) {
			return true
		}
	}

	return false
}

// filterStarted для сегодняшней даты убирает слоты, которые уже начались
func filterStarted(slots []types.TimeString, requestDate, now time.Time) []types.TimeString {
	if !isSameDay(requestDate, now) {
		return slots
	}

	nowTime := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.IsAfter(nowTime) {
			upcoming = append(upcoming, s)
		}
	}
	return upcoming
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
