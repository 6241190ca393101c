package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afroconnect/booking-service/internal/domain"
	"github.com/afroconnect/booking-service/internal/events"
	apptRepo "github.com/afroconnect/booking-service/internal/infra/storage/appointment"
	"github.com/afroconnect/booking-service/internal/service/appointments/models"
)

type stubRepo struct {
	byID map[string]*domain.Appointment

	updatedStatus domain.AppointmentStatus
	cancelled     bool
	cancelReason  *string
	paid          bool
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if a, ok := s.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (s *stubRepo) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(s.byID))
	for _, a := range s.byID {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(s.byID))
	for _, a := range s.byID {
		if a.BusinessID == filter.BusinessID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	s.updatedStatus = status
	s.byID[id].Status = status
	return nil
}

func (s *stubRepo) Cancel(ctx context.Context, id string, reason *string) error {
	s.cancelled = true
	s.cancelReason = reason
	s.byID[id].Status = domain.StatusCancelled
	return nil
}

func (s *stubRepo) MarkPaid(ctx context.Context, id string) error {
	s.paid = true
	s.byID[id].IsPaid = true
	return nil
}

type stubPublisher struct {
	keys []string
}

func (s *stubPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	s.keys = append(s.keys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newFixture(status domain.AppointmentStatus) (*Service, *stubRepo, *stubPublisher) {
	repo := &stubRepo{byID: map[string]*domain.Appointment{
		"a1": {
			ID:         "a1",
			BusinessID: 10,
			CustomerID: 20,
			Status:     status,
		},
	}}
	pub := &stubPublisher{}
	return NewService(repo, pub, nopLogger{}), repo, pub
}

func TestTransitionConfirmByBusiness(t *testing.T) {
	svc, repo, pub := newFixture(domain.StatusPending)

	got, err := svc.Transition(context.Background(), models.TransitionRequest{
		AppointmentID: "a1",
		ActorID:       10,
		Actor:         domain.ActorBusiness,
		ToStatus:      domain.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	assert.Equal(t, []string{events.RKAppointmentConfirmed}, pub.keys)
}

func TestTransitionConfirmByCustomerForbidden(t *testing.T) {
	svc, repo, _ := newFixture(domain.StatusPending)

	_, err := svc.Transition(context.Background(), models.TransitionRequest{
		AppointmentID: "a1",
		ActorID:       20,
		Actor:         domain.ActorCustomer,
		ToStatus:      domain.StatusConfirmed,
	})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, repo.byID["a1"].Status)
}

func TestCancelThenConfirmFails(t *testing.T) {
	svc, repo, _ := newFixture(domain.StatusPending)

	_, err := svc.Cancel(context.Background(), models.CancelRequest{
		AppointmentID: "a1",
		ActorID:       20,
		Actor:         domain.ActorCustomer,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, repo.byID["a1"].Status)

	_, err = svc.Transition(context.Background(), models.TransitionRequest{
		AppointmentID: "a1",
		ActorID:       10,
		Actor:         domain.ActorBusiness,
		ToStatus:      domain.StatusConfirmed,
	})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusCancelled, repo.byID["a1"].Status)
}

func TestCancelRecordsReason(t *testing.T) {
	svc, repo, pub := newFixture(domain.StatusConfirmed)

	reason := "client asked to reschedule"
	got, err := svc.Cancel(context.Background(), models.CancelRequest{
		AppointmentID: "a1",
		ActorID:       10,
		Actor:         domain.ActorBusiness,
		Reason:        &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NotNil(t, repo.cancelReason)
	assert.Equal(t, reason, *repo.cancelReason)
	assert.Equal(t, []string{events.RKAppointmentCancelled}, pub.keys)
}

func TestGetByIDAccess(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusPending)

	_, err := svc.GetByID(context.Background(), "a1", 20, domain.ActorCustomer)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "a1", 10, domain.ActorBusiness)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "a1", 99, domain.ActorCustomer)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "a1", 99, domain.ActorBusiness)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "missing", 20, domain.ActorCustomer)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMarkPaid(t *testing.T) {
	svc, repo, pub := newFixture(domain.StatusCompleted)

	got, err := svc.MarkPaid(context.Background(), "a1", 10)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
	assert.True(t, repo.paid)
	assert.Equal(t, []string{events.RKAppointmentPaid}, pub.keys)

	_, err = svc.MarkPaid(context.Background(), "a1", 10)
	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestMarkPaidCancelledRejected(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusCancelled)

	_, err := svc.MarkPaid(context.Background(), "a1", 10)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCustomerAppointmentsUnknownMode(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusPending)

	_, err := svc.GetCustomerAppointments(context.Background(), models.CustomerAppointmentsRequest{
		CustomerID: 20,
		Mode:       "weird",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
