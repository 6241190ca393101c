package get_appointment

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id string, actorID int64, actor domain.Actor) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
