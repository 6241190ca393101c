package update_availability_rules

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
)

type AvailabilityService interface {
	Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
