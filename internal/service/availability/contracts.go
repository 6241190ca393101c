package availability

import (
	"context"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/infra/cache"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error)
	Upsert(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
}

// Cache контракт кэша (Redis или no-op)
type Cache = cache.Cache

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
