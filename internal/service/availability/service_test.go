package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afroconnect/booking-service/internal/domain"
	ruleRepo "github.com/afroconnect/booking-service/internal/infra/storage/availability"
	"github.com/afroconnect/booking-service/pkg/ptr"
)

type stubRepo struct {
	rule *domain.AvailabilityRule

	getCalls int
	upserted *domain.AvailabilityRule
}

func (s *stubRepo) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error) {
	s.getCalls++
	if s.rule == nil {
		return nil, ruleRepo.ErrRuleNotFound
	}
	return s.rule, nil
}

func (s *stubRepo) Upsert(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	s.upserted = rule
	return rule, nil
}

type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRule(businessID int64) *domain.AvailabilityRule {
	return DefaultRule(businessID)
}

func TestDefaultRule(t *testing.T) {
	rule := DefaultRule(7)

	assert.Equal(t, int64(7), rule.BusinessID)
	assert.Equal(t, domain.DefaultGranularityMinutes, rule.GranularityMinutes)
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := rule.Hours.ForWeekday(d)
		require.True(t, day.IsOpen, "weekday %s", d)
		assert.Equal(t, domain.DefaultOpenTime, *day.OpenTime)
		assert.Equal(t, domain.DefaultCloseTime, *day.CloseTime)
	}
}

func TestGetByBusinessIDReadThrough(t *testing.T) {
	repo := &stubRepo{rule: validRule(7)}
	svc := NewService(repo, newMapCache(), time.Minute, nopLogger{})

	// Первый запрос идёт в БД и наполняет кэш
	rule, err := svc.GetByBusinessID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rule.BusinessID)
	assert.Equal(t, 1, repo.getCalls)

	// Второй запрос обслуживается кэшем
	_, err = svc.GetByBusinessID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetByBusinessIDNotFound(t *testing.T) {
	svc := NewService(&stubRepo{}, newMapCache(), time.Minute, nopLogger{})

	_, err := svc.GetByBusinessID(context.Background(), 7)
	require.ErrorIs(t, err, ErrRuleNotFound)
}

func TestUpdateInvalidatesCache(t *testing.T) {
	repo := &stubRepo{rule: validRule(7)}
	c := newMapCache()
	svc := NewService(repo, c, time.Minute, nopLogger{})

	_, err := svc.GetByBusinessID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, c.data, 1)

	updated := validRule(7)
	updated.GranularityMinutes = 15
	_, err = svc.Update(context.Background(), updated)
	require.NoError(t, err)

	assert.Empty(t, c.data)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, 15, repo.upserted.GranularityMinutes)
}

func TestUpdateRejectsInvalidRules(t *testing.T) {
	svc := NewService(&stubRepo{}, newMapCache(), time.Minute, nopLogger{})

	bad := validRule(0)
	_, err := svc.Update(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidRule)

	bad = validRule(7)
	bad.GranularityMinutes = 1
	_, err = svc.Update(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidRule)

	bad = validRule(7)
	bad.Hours.Monday = domain.DaySchedule{IsOpen: true}
	_, err = svc.Update(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidRule)

	bad = validRule(7)
	bad.Hours.Monday = domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("18:00"),
		CloseTime: ptr.Ptr("09:00"),
	}
	_, err = svc.Update(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidRule)
}
