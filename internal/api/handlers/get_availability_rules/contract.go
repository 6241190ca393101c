package get_availability_rules

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
)

type AvailabilityService interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
