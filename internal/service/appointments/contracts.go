package appointments

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id string, reason *string) error
	MarkPaid(ctx context.Context, id string) error
}

// EventPublisher интерфейс публикации событий переходов (fire-and-forget)
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
