package create_appointment

import (
	"time"

	"github.com/afroconnect/booking-service/internal/api/handlers"
	"github.com/afroconnect/booking-service/internal/domain"
	createAppointment "github.com/afroconnect/booking-service/internal/usecase/create_appointment"
	"github.com/afroconnect/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BusinessID    int64          `json:"businessId"`
	Date          string         `json:"date"`      // "2025-10-15"
	StartTime     string         `json:"startTime"` // "10:00"
	PaymentMethod string         `json:"paymentMethod"`
	Service       ServiceRequest `json:"service"`
}

// ServiceRequest снапшот услуги из каталога на момент записи
type ServiceRequest struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Category        string  `json:"category,omitempty"`
	IsActive        bool    `json:"isActive"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := domain.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BusinessID:    r.BusinessID,
		CustomerID:    customerID,
		Date:          date,
		StartTime:     startTime,
		PaymentMethod: paymentMethod,
		Service: domain.ServiceSnapshot{
			ServiceID:       r.Service.ServiceID,
			Name:            r.Service.Name,
			Description:     r.Service.Description,
			DurationMinutes: r.Service.DurationMinutes,
			Price:           r.Service.Price,
			Currency:        r.Service.Currency,
			Category:        r.Service.Category,
			IsActive:        r.Service.IsActive,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *handlers.AppointmentResponse {
	return &handlers.AppointmentResponse{
		ID:         resp.ID,
		BusinessID: resp.BusinessID,
		CustomerID: resp.CustomerID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		Service: handlers.ServiceResponse{
			ServiceID:       resp.Service.ServiceID,
			Name:            resp.Service.Name,
			Description:     resp.Service.Description,
			DurationMinutes: resp.Service.DurationMinutes,
			Price:           resp.Service.Price,
			Currency:        resp.Service.Currency,
			Category:        resp.Service.Category,
			IsActive:        resp.Service.IsActive,
		},
		Status:        resp.Status,
		IsPaid:        resp.IsPaid,
		PaymentMethod: resp.PaymentMethod,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
