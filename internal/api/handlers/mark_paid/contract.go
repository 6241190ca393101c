package mark_paid

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
)

type AppointmentService interface {
	MarkPaid(ctx context.Context, id string, businessID int64) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
