package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afroconnect/booking-service/internal/domain"
	availabilitySvc "github.com/afroconnect/booking-service/internal/service/availability"
	"github.com/afroconnect/booking-service/pkg/types"
)

type stubRepo struct {
	occupied []*domain.Appointment
	created  *domain.Appointment

	createErr error
}

func (s *stubRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = appt
	cp := *appt
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	return &cp, nil
}

func (s *stubRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.occupied, nil
}

type stubRules struct {
	rule *domain.AvailabilityRule
}

func (s *stubRules) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityRule, error) {
	if s.rule == nil {
		return nil, availabilitySvc.ErrRuleNotFound
	}
	return s.rule, nil
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPublisher struct {
	keys []string
}

func (s *stubPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	s.keys = append(s.keys, key)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(repo *stubRepo, rules *stubRules, pub *stubPublisher, now time.Time) *UseCase {
	return &UseCase{
		apptRepo:     repo,
		rules:        rules,
		txManager:    &stubTxManager{},
		publisher:    pub,
		timeProvider: &fixedTime{now: now},
		logger:       nopLogger{},
	}
}

func validRequest() *Request {
	return &Request{
		BusinessID:    10,
		CustomerID:    20,
		Date:          time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		PaymentMethod: domain.PaymentCash,
		Service: domain.ServiceSnapshot{
			ServiceID:       1,
			Name:            "Box braids",
			DurationMinutes: 60,
			Price:           120,
			Currency:        "EUR",
			IsActive:        true,
		},
	}
}

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestExecuteCreatesPendingAppointment(t *testing.T) {
	repo := &stubRepo{}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubRules{}, pub, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.IsPaid)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Len(t, pub.keys, 1)
}

func TestExecuteIsPaidFollowsPaymentMethod(t *testing.T) {
	repo := &stubRepo{}
	uc := newUseCase(repo, &stubRules{}, &stubPublisher{}, testNow)

	req := validRequest()
	req.PaymentMethod = domain.PaymentInApp
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.IsPaid)

	req = validRequest()
	req.PaymentMethod = domain.PaymentCash
	req.StartTime = types.TimeString("12:00")
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.IsPaid)
}

func TestExecuteSlotConflict(t *testing.T) {
	occupied := &domain.Appointment{
		ID:         "existing",
		BusinessID: 10,
		StartTime:  types.TimeString("10:00"),
		Status:     domain.StatusConfirmed,
		Service:    domain.ServiceSnapshot{DurationMinutes: 60},
	}
	repo := &stubRepo{occupied: []*domain.Appointment{occupied}}
	uc := newUseCase(repo, &stubRules{}, &stubPublisher{}, testNow)

	// Пересечение с занятым интервалом [10:00, 11:00)
	req := validRequest()
	req.StartTime = types.TimeString("10:30")
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)

	// Граничащий слот [11:00, 12:00) не конфликтует
	req = validRequest()
	req.StartTime = types.TimeString("11:00")
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecuteDateInPast(t *testing.T) {
	uc := newUseCase(&stubRepo{}, &stubRules{}, &stubPublisher{}, testNow)

	req := validRequest()
	req.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateInPast)
}

func TestExecuteInactiveService(t *testing.T) {
	uc := newUseCase(&stubRepo{}, &stubRules{}, &stubPublisher{}, testNow)

	req := validRequest()
	req.Service.IsActive = false
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecuteBlockedDate(t *testing.T) {
	rule := availabilitySvc.DefaultRule(10)
	rule.BlockedDates = []time.Time{time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}
	uc := newUseCase(&stubRepo{}, &stubRules{rule: rule}, &stubPublisher{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDateBlocked)
}

func TestExecuteClosedDay(t *testing.T) {
	rule := availabilitySvc.DefaultRule(10)
	rule.Hours.Monday = domain.DaySchedule{IsOpen: false}
	uc := newUseCase(&stubRepo{}, &stubRules{rule: rule}, &stubPublisher{}, testNow)

	// 2025-06-16 — понедельник
	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecuteOutsideWorkingHours(t *testing.T) {
	uc := newUseCase(&stubRepo{}, &stubRules{}, &stubPublisher{}, testNow)

	// Дефолтные часы 09:00-18:00, услуга 60 минут не помещается с 17:30
	req := validRequest()
	req.StartTime = types.TimeString("17:30")
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideWorkingHours)
}
