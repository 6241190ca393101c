package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/afroconnect/booking-service/internal/domain"
	availabilitySvc "github.com/afroconnect/booking-service/internal/service/availability"
)

// UseCase use case получения доступных слотов для записи
type UseCase struct {
	apptRepo     AppointmentRepository
	rules        AvailabilityRulesProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	rules AvailabilityRulesProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	empty := &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		Slots:      []domain.AvailableSlot{},
	}

	// Прошедшая дата — пустой список, бронирование назад не поддерживается
	if isDateInPast(req.Date, now) {
		return empty, nil
	}

	rule, err := uc.rules.GetByBusinessID(ctx, req.BusinessID)
	if err != nil && !errors.Is(err, availabilitySvc.ErrRuleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get availability rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rule: %v", ErrInternal, err)
	}
	if rule == nil {
		rule = availabilitySvc.DefaultRule(req.BusinessID)
		uc.logger.Info("GetAvailableSlots: using default availability rule for business=%d", req.BusinessID)
	}

	// Заблокированная дата — пустой список независимо от рабочих часов
	if rule.IsBlocked(req.Date) {
		uc.logger.Info("GetAvailableSlots: date %s is blocked for business=%d",
			req.Date.Format(domain.DateFormat), req.BusinessID)
		return empty, nil
	}

	day := rule.Hours.ForWeekday(req.Date.Weekday())
	candidates, err := generateCandidateSlots(day, rule.GranularityMinutes, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate candidate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidate slots: %v", ErrInternal, err)
	}

	candidates = filterStarted(candidates, req.Date, now)
	if len(candidates) == 0 {
		return empty, nil
	}

	filter := domain.BusinessAppointmentsFilter{
		BusinessID:   req.BusinessID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
		OnlyOccupied: true,
	}

	occupied, err := uc.apptRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	slots := filterOccupied(candidates, req.DurationMinutes, occupied)

	uc.logger.Info("GetAvailableSlots: %d slots available for business=%d on %s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
