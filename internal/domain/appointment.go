package domain

import (
	"time"

	"github.com/afroconnect/booking-service/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Actor identifies who is driving a status change
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorBusiness Actor = "business"
)

// PaymentMethod how the customer pays for the service
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentInApp PaymentMethod = "in_app"
)

// Appointment represents a booking of a service at a business by a customer.
// Records are never physically deleted: cancellation is a status change,
// the table is an append-only audit trail.
type Appointment struct {
	ID         string // UUID, generated at creation
	BusinessID int64
	CustomerID int64

	Date      time.Time        // calendar date of the appointment
	StartTime types.TimeString // "HH:MM" local time-of-day

	// Service is a snapshot taken at booking time. Price and duration are
	// copied, not live-linked: the business changing its price list later
	// must not rewrite history.
	Service ServiceSnapshot

	Status        AppointmentStatus
	IsPaid        bool
	PaymentMethod PaymentMethod

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further status transition is permitted
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// OccupiesSlot returns true if the appointment blocks its time slot.
// Only pending and confirmed appointments count for double-booking.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment may still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// BusinessAppointmentsFilter фильтр для получения записей бизнеса
type BusinessAppointmentsFilter struct {
	BusinessID   int64              // Обязательный параметр
	StartDate    *time.Time         // Начало периода (опционально)
	EndDate      *time.Time         // Конец периода (опционально)
	Status       *AppointmentStatus // Фильтр по статусу (опционально)
	OnlyOccupied bool               // Только pending/confirmed (для проверки занятости слотов)
}
