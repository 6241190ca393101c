package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/events"
	apptRepo "github.com/afroconnect/booking-service/internal/infra/storage/appointment"
	availabilitySvc "github.com/afroconnect/booking-service/internal/service/availability"
)

// UseCase use case создания записи на услугу
type UseCase struct {
	apptRepo     AppointmentRepository
	rules        AvailabilityRulesProvider
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	rules AvailabilityRulesProvider,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		rules:        rules,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка занятости слота и вставка выполняются в одной
// SERIALIZABLE-транзакции с FOR UPDATE — конкурентный запрос на тот же
// слот либо увидит созданную запись, либо упрётся в блокировку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: business=%d, customer=%d, service=%d, date=%s, time=%s",
		req.BusinessID, req.CustomerID, req.Service.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Правила доступности бизнеса (с дефолтом, если не настроены)
	rule, err := uc.rules.GetByBusinessID(ctx, req.BusinessID)
	if err != nil && !errors.Is(err, availabilitySvc.ErrRuleNotFound) {
		uc.logger.Error("CreateAppointment: failed to get availability rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rule: %v", ErrInternal, err)
	}

	if rule == nil {
		rule = availabilitySvc.DefaultRule(req.BusinessID)
		uc.logger.Info("CreateAppointment: using default availability rule for business=%d", req.BusinessID)
	}

	// 4. Дата не заблокирована и день рабочий
	if rule.IsBlocked(req.Date) {
		uc.logger.Warn("CreateAppointment: date %s is blocked for business=%d",
			req.Date.Format(domain.DateFormat), req.BusinessID)
		return nil, ErrDateBlocked
	}

	day := rule.Hours.ForWeekday(req.Date.Weekday())
	if err := validateWithinWorkingHours(day, req.StartTime, req.Service.DurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: slot %s rejected for business=%d: %v",
			req.StartTime, req.BusinessID, err)
		return nil, err
	}

	var result *domain.Appointment

	// 5. Проверка занятости и вставка — в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.BusinessAppointmentsFilter{
			BusinessID:   req.BusinessID,
			StartDate:    &req.Date,
			EndDate:      &req.Date,
			OnlyOccupied: true,
		}

		occupied, err := uc.apptRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get occupied slots: %v", err)
			return fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
		}

		conflict, err := hasOverlap(req.StartTime, req.Service.DurationMinutes, occupied)
		if err != nil {
			uc.logger.Error("CreateAppointment: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateAppointment: slot %s already taken for business=%d on %s",
				req.StartTime, req.BusinessID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		appt := &domain.Appointment{
			ID:            uuid.NewString(),
			BusinessID:    req.BusinessID,
			CustomerID:    req.CustomerID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			Service:       req.Service,
			Status:        domain.StatusPending,
			PaymentMethod: req.PaymentMethod,
			// Для in_app оплата считается захваченной в момент записи
			IsPaid: req.PaymentMethod == domain.PaymentInApp,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Частичный уникальный индекс — последняя линия защиты от гонки
			if errors.Is(err, apptRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateAppointment: unique index rejected slot %s for business=%d",
					req.StartTime, req.BusinessID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s status=%s", result.ID, result.Status)

	// 6. Событие — fire-and-forget, ошибка не влияет на результат
	event := events.FromAppointment(result, domain.ActorCustomer, now)
	if err := uc.publisher.PublishJSON(ctx, events.RKAppointmentCreated, event); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish created event for id=%s: %v", result.ID, err)
	}

	return fromDomain(result), nil
}
