// Package events публикует события жизненного цикла записей в topic-exchange
// RabbitMQ. Доставка fire-and-forget: ядро не гарантирует получение,
// ошибка публикации логируется и не влияет на результат операции.
package events

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
)

// Routing keys событий записи
const (
	RKAppointmentCreated   = "appointment.created"
	RKAppointmentConfirmed = "appointment.confirmed"
	RKAppointmentCompleted = "appointment.completed"
	RKAppointmentCancelled = "appointment.cancelled"
	RKAppointmentPaid      = "appointment.paid"
)

// AppointmentEvent payload события перехода статуса
type AppointmentEvent struct {
	AppointmentID string  `json:"appointment_id"`
	BusinessID    int64   `json:"business_id"`
	CustomerID    int64   `json:"customer_id"`
	Date          string  `json:"date"`       // "2025-10-15"
	StartTime     string  `json:"start_time"` // "10:00"
	ServiceName   string  `json:"service_name"`
	Status        string  `json:"status"`
	Actor         string  `json:"actor,omitempty"`
	OccurredAt    int64   `json:"occurred_at"` // unix seconds
	Reason        *string `json:"reason,omitempty"`
}

// FromAppointment собирает payload из доменной модели
func FromAppointment(a *domain.Appointment, actor domain.Actor, now time.Time) AppointmentEvent {
	return AppointmentEvent{
		AppointmentID: a.ID,
		BusinessID:    a.BusinessID,
		CustomerID:    a.CustomerID,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime.String(),
		ServiceName:   a.Service.Name,
		Status:        string(a.Status),
		Actor:         string(actor),
		OccurredAt:    now.Unix(),
		Reason:        a.CancellationReason,
	}
}

// RoutingKeyForStatus возвращает routing key по новому статусу
func RoutingKeyForStatus(status domain.AppointmentStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return RKAppointmentConfirmed
	case domain.StatusCompleted:
		return RKAppointmentCompleted
	case domain.StatusCancelled:
		return RKAppointmentCancelled
	default:
		return RKAppointmentCreated
	}
}
