package update_appointment_status

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	Transition(ctx context.Context, req models.TransitionRequest) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
