package get_business_stats

import (
	"context"
	"time"

	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	StatsForBusiness(ctx context.Context, businessID int64, today time.Time) (models.BusinessStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
