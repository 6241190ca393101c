package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/afroconnect/booking-service/internal/domain"
	ruleRepo "github.com/afroconnect/booking-service/internal/infra/storage/availability"
	"github.com/afroconnect/booking-service/pkg/ptr"
	"github.com/afroconnect/booking-service/pkg/types"
)

// Service сервис правил доступности с read-through кэшем.
// Правила читаются на каждый запрос слотов и меняются редко —
// классический кандидат на кэширование с коротким TTL.
type Service struct {
	repo   RuleRepository
	cache  Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает сервис правил доступности
func NewService(repo RuleRepository, c Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// DefaultRule правила по умолчанию для бизнеса, который их не настроил:
// открыт каждый день 09:00-18:00, шаг 30 минут, без заблокированных дат.
func DefaultRule(businessID int64) *domain.AvailabilityRule {
	open := domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(domain.DefaultOpenTime),
		CloseTime: ptr.Ptr(domain.DefaultCloseTime),
	}
	return &domain.AvailabilityRule{
		BusinessID: businessID,
		Hours: domain.WeeklyHours{
			Monday:    open,
			Tuesday:   open,
			Wednesday: open,
			Thursday:  open,
			Friday:    open,
			Saturday:  open,
			Sunday:    open,
		},
		GranularityMinutes: domain.DefaultGranularityMinutes,
	}
}

// GetByBusinessID получает правила бизнеса: сначала кэш, затем БД.
// Ошибки кэша не фатальны — логируются и запрос идёт в БД.
func (s *Service) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error) {
	key := cacheKey(businessID)

	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("GetByBusinessID: cache get failed for business=%d: %v", businessID, err)
	} else if ok {
		var rule domain.AvailabilityRule
		if err := json.Unmarshal(raw, &rule); err == nil {
			return &rule, nil
		}
		s.logger.Warn("GetByBusinessID: stale cache entry for business=%d, dropping", businessID)
		_ = s.cache.Delete(ctx, key)
	}

	rule, err := s.repo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByBusinessID: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetByBusinessID - repository error: %v", ErrInternal, err)
	}

	if raw, err := json.Marshal(rule); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("GetByBusinessID: cache set failed for business=%d: %v", businessID, err)
		}
	}

	return rule, nil
}

// Update создает или заменяет правила бизнеса и инвалидирует кэш
func (s *Service) Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	s.logger.Info("Update: updating availability rule for business=%d", rule.BusinessID)

	if err := validateRule(rule); err != nil {
		s.logger.Warn("Update: invalid rule for business=%d: %v", rule.BusinessID, err)
		return nil, err
	}

	updated, err := s.repo.Upsert(ctx, rule)
	if err != nil {
		s.logger.Error("Update: repository error for business=%d: %v", rule.BusinessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Delete(ctx, cacheKey(rule.BusinessID)); err != nil {
		s.logger.Warn("Update: cache invalidation failed for business=%d: %v", rule.BusinessID, err)
	}

	s.logger.Info("Update: availability rule updated for business=%d", rule.BusinessID)
	return updated, nil
}

func cacheKey(businessID int64) string {
	return fmt.Sprintf("availability:rules:%d", businessID)
}

func validateRule(rule *domain.AvailabilityRule) error {
	if rule.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidRule)
	}

	if rule.GranularityMinutes < domain.MinGranularityMinutes || rule.GranularityMinutes > domain.MaxGranularityMinutes {
		return fmt.Errorf("%w: granularity must be between %d and %d minutes",
			ErrInvalidRule, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}

	days := []domain.DaySchedule{
		rule.Hours.Monday, rule.Hours.Tuesday, rule.Hours.Wednesday,
		rule.Hours.Thursday, rule.Hours.Friday, rule.Hours.Saturday, rule.Hours.Sunday,
	}
	for _, day := range days {
		if !day.IsOpen {
			continue
		}
		if day.OpenTime == nil || day.CloseTime == nil {
			return fmt.Errorf("%w: open day requires openTime and closeTime", ErrInvalidRule)
		}
		open, err := types.NewTimeStringFromString(*day.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: invalid openTime %q", ErrInvalidRule, *day.OpenTime)
		}
		closeT, err := types.NewTimeStringFromString(*day.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: invalid closeTime %q", ErrInvalidRule, *day.CloseTime)
		}
		if !open.IsBefore(closeT) {
			return fmt.Errorf("%w: openTime %s must be before closeTime %s", ErrInvalidRule, open, closeT)
		}
	}

	return nil
}
