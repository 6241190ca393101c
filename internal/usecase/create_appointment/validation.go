package create_appointment

import (
	"fmt"
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if _, err := domain.ParsePaymentMethod(string(req.PaymentMethod)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return validateServiceSnapshot(&req.Service)
}

// validateServiceSnapshot проверяет снапшот услуги
func validateServiceSnapshot(s *domain.ServiceSnapshot) error {
	if s.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if s.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	if s.DurationMinutes < domain.MinDurationMinutes || s.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: service duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if s.Price < 0 {
		return fmt.Errorf("%w: service price must not be negative", ErrInvalidInput)
	}

	if !s.IsActive {
		return ErrServiceInactive
	}

	return nil
}

// validateWithinWorkingHours проверяет, что интервал записи целиком
// лежит в рабочих часах дня
func validateWithinWorkingHours(day domain.DaySchedule, start types.TimeString, durationMinutes int) error {
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return ErrBusinessClosed
	}

	openTime, err := types.NewTimeStringFromString(*day.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: malformed open time: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(*day.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: malformed close time: %v", ErrInternal, err)
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if start.IsBefore(openTime) || end.IsAfter(closeTime) {
		return ErrOutsideWorkingHours
	}

	return nil
}

// hasOverlap проверяет пересечение интервала [start, start+duration) с
// активными записями. Полуоткрытые интервалы: граничащие не пересекаются.
func hasOverlap(start types.TimeString, durationMinutes int, appointments []*domain.Appointment) (bool, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
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

		// [a,b) и [c,d) пересекаются <=> a < d && c < b
		if apptStart.IsBefore(end) && apptEnd.IsAfter(start) {
			return true, nil
		}
	}

	return false, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
