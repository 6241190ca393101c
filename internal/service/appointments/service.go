package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/events"
	apptRepo "github.com/afroconnect/booking-service/internal/infra/storage/appointment"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

// Service read-сторона записей и охрана переходов статусов.
// Все изменения статуса проходят через доменную таблицу переходов,
// все чтения проверяют принадлежность записи актору.
type Service struct {
	repo      AppointmentRepository
	publisher EventPublisher
	logger    Logger
}

// NewService создает сервис записей
func NewService(repo AppointmentRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// GetByID получает запись с проверкой доступа: клиент видит свои записи,
// бизнес — записи к себе.
func (s *Service) GetByID(ctx context.Context, id string, actorID int64, actor domain.Actor) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(appt, actorID, actor); err != nil {
		s.logger.Warn("GetByID: access denied for %s=%d to appointment=%s", actor, actorID, id)
		return nil, err
	}

	return appt, nil
}

// Transition переводит запись в новый статус с проверкой таблицы переходов
// и прав актора. При успехе публикует событие перехода.
func (s *Service) Transition(ctx context.Context, req models.TransitionRequest) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(appt, req.ActorID, req.Actor); err != nil {
		s.logger.Warn("Transition: access denied for %s=%d to appointment=%s", req.Actor, req.ActorID, req.AppointmentID)
		return nil, err
	}

	if err := domain.Transition(appt.Status, req.ToStatus, req.Actor); err != nil {
		s.logger.Warn("Transition: rejected %s -> %s by %s for appointment=%s",
			appt.Status, req.ToStatus, req.Actor, req.AppointmentID)
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, req.AppointmentID, req.ToStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Transition: repository error for appointment=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	appt.Status = req.ToStatus
	s.publishEvent(ctx, appt, req.Actor)

	s.logger.Info("Transition: appointment=%s moved to %s by %s", req.AppointmentID, req.ToStatus, req.Actor)
	return appt, nil
}

// Cancel отменяет запись с опциональной причиной. Отмена — единственный
// переход, доступный обоим акторам из обоих нетерминальных статусов.
func (s *Service) Cancel(ctx context.Context, req models.CancelRequest) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(appt, req.ActorID, req.Actor); err != nil {
		s.logger.Warn("Cancel: access denied for %s=%d to appointment=%s", req.Actor, req.ActorID, req.AppointmentID)
		return nil, err
	}

	if err := domain.Transition(appt.Status, domain.StatusCancelled, req.Actor); err != nil {
		s.logger.Warn("Cancel: rejected for appointment=%s in status %s", req.AppointmentID, appt.Status)
		return nil, err
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	if err := s.repo.Cancel(ctx, req.AppointmentID, req.Reason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	appt.CancellationReason = req.Reason
	s.publishEvent(ctx, appt, req.Actor)

	s.logger.Info("Cancel: appointment=%s cancelled by %s", req.AppointmentID, req.Actor)
	return appt, nil
}

// MarkPaid отмечает оплату наличными. Доступно только бизнесу,
// к которому относится запись; отменённые записи оплатить нельзя.
func (s *Service) MarkPaid(ctx context.Context, id string, businessID int64) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(appt, businessID, domain.ActorBusiness); err != nil {
		s.logger.Warn("MarkPaid: access denied for business=%d to appointment=%s", businessID, id)
		return nil, err
	}

	if appt.IsPaid {
		return nil, ErrAlreadyPaid
	}
	if appt.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: cancelled appointment cannot be paid", ErrInvalidInput)
	}

	if err := s.repo.MarkPaid(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("MarkPaid: repository error for appointment=%s: %v", id, err)
		return nil, fmt.Errorf("%w: MarkPaid - repository error: %v", ErrInternal, err)
	}

	appt.IsPaid = true
	if err := s.publisher.PublishJSON(ctx, events.RKAppointmentPaid,
		events.FromAppointment(appt, domain.ActorBusiness, time.Now().UTC())); err != nil {
		s.logger.Warn("MarkPaid: event publish failed for appointment=%s: %v", id, err)
	}

	s.logger.Info("MarkPaid: appointment=%s marked as paid by business=%d", id, businessID)
	return appt, nil
}

// GetCustomerAppointments возвращает записи клиента, отфильтрованные
// по режиму (upcoming/past/cancelled) относительно переданного today.
func (s *Service) GetCustomerAppointments(ctx context.Context, req models.CustomerAppointmentsRequest) ([]*domain.Appointment, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	appts, err := s.repo.GetByCustomerID(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	return FilterForCustomer(appts, req.Mode, req.Today), nil
}

// GetBusinessAppointments возвращает записи бизнеса по вкладке
// и опциональному диапазону дат.
func (s *Service) GetBusinessAppointments(ctx context.Context, req models.BusinessAppointmentsRequest) ([]*domain.Appointment, error) {
	if !req.Tab.Valid() {
		return nil, fmt.Errorf("%w: unknown tab %q", ErrInvalidInput, req.Tab)
	}

	appts, err := s.repo.GetByBusinessWithFilter(ctx, domain.BusinessAppointmentsFilter{
		BusinessID: req.BusinessID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		s.logger.Error("GetBusinessAppointments: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessAppointments - repository error: %v", ErrInternal, err)
	}

	return FilterByTab(appts, req.Tab), nil
}

// StatsForBusiness считает статистику бизнеса относительно переданного today
func (s *Service) StatsForBusiness(ctx context.Context, businessID int64, today time.Time) (models.BusinessStats, error) {
	appts, err := s.repo.GetByBusinessWithFilter(ctx, domain.BusinessAppointmentsFilter{
		BusinessID: businessID,
	})
	if err != nil {
		s.logger.Error("StatsForBusiness: repository error for business=%d: %v", businessID, err)
		return models.BusinessStats{}, fmt.Errorf("%w: StatsForBusiness - repository error: %v", ErrInternal, err)
	}

	return Stats(appts, today), nil
}

func (s *Service) getAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("getAppointment: repository error for appointment=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getAppointment - repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

func (s *Service) publishEvent(ctx context.Context, appt *domain.Appointment, actor domain.Actor) {
	key := events.RoutingKeyForStatus(appt.Status)
	if err := s.publisher.PublishJSON(ctx, key, events.FromAppointment(appt, actor, time.Now().UTC())); err != nil {
		s.logger.Warn("publishEvent: publish %s failed for appointment=%s: %v", key, appt.ID, err)
	}
}

func checkAccess(appt *domain.Appointment, actorID int64, actor domain.Actor) error {
	switch actor {
	case domain.ActorCustomer:
		if appt.CustomerID != actorID {
			return ErrAccessDenied
		}
	case domain.ActorBusiness:
		if appt.BusinessID != actorID {
			return ErrAccessDenied
		}
	default:
		return fmt.Errorf("%w: unknown actor %q", ErrInvalidInput, actor)
	}
	return nil
}
