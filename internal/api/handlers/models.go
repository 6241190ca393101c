package handlers

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
)

// AppointmentResponse общее HTTP представление записи.
// Используется всеми эндпоинтами, возвращающими записи.
type AppointmentResponse struct {
	ID                 string          `json:"id"`
	BusinessID         int64           `json:"businessId"`
	CustomerID         int64           `json:"customerId"`
	Date               string          `json:"date"`
	StartTime          string          `json:"startTime"`
	Service            ServiceResponse `json:"service"`
	Status             string          `json:"status"`
	IsPaid             bool            `json:"isPaid"`
	PaymentMethod      string          `json:"paymentMethod"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	CancelledAt        *string         `json:"cancelledAt,omitempty"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

// ServiceResponse снапшот услуги на момент записи
type ServiceResponse struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Category        string  `json:"category,omitempty"`
	IsActive        bool    `json:"isActive"`
}

// FromAppointment конвертирует доменную запись в HTTP представление
func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:         a.ID,
		BusinessID: a.BusinessID,
		CustomerID: a.CustomerID,
		Date:       a.Date.Format(domain.DateFormat),
		StartTime:  a.StartTime.String(),
		Service: ServiceResponse{
			ServiceID:       a.Service.ServiceID,
			Name:            a.Service.Name,
			Description:     a.Service.Description,
			DurationMinutes: a.Service.DurationMinutes,
			Price:           a.Service.Price,
			Currency:        a.Service.Currency,
			Category:        a.Service.Category,
			IsActive:        a.Service.IsActive,
		},
		Status:             string(a.Status),
		IsPaid:             a.IsPaid,
		PaymentMethod:      string(a.PaymentMethod),
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
	if a.CancelledAt != nil {
		cancelled := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}
	return resp
}

// FromAppointments конвертирует список доменных записей
func FromAppointments(appts []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, FromAppointment(a))
	}
	return out
}
