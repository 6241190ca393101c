package create_appointment

import (
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/pkg/types"
)

// Request модель запроса на создание записи.
// Снапшот услуги приходит от вызывающей стороны: каталог услуг принадлежит
// внешнему сервису, здесь фиксируется его состояние на момент записи.
type Request struct {
	BusinessID    int64
	CustomerID    int64
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала ("10:00")
	PaymentMethod domain.PaymentMethod
	Service       domain.ServiceSnapshot
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string
	BusinessID    int64
	CustomerID    int64
	Date          time.Time
	StartTime     types.TimeString
	Service       domain.ServiceSnapshot
	Status        string
	IsPaid        bool
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		CustomerID:    a.CustomerID,
		Date:          a.Date,
		StartTime:     a.StartTime,
		Service:       a.Service,
		Status:        string(a.Status),
		IsPaid:        a.IsPaid,
		PaymentMethod: string(a.PaymentMethod),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
