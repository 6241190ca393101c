package get_customer_appointments

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetCustomerAppointments(ctx context.Context, req models.CustomerAppointmentsRequest) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
