package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.reservation
	return &copied, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) GetByRoomWithFilter(_ context.Context, _ domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.reservation.Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64) error {
	now := time.Now()
	f.reservation.Status = domain.StatusCancelled
	f.reservation.CancelledAt = &now
	return nil
}

type fakeRoomRepo struct {
	room *domain.Room
}

func (f *fakeRoomRepo) GetRoomByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	requesterID = int64(7)
	ownerID     = int64(100)
	strangerID  = int64(8)
)

func testReservation(status domain.ReservationStatus, startsIn time.Duration, now time.Time) *domain.Reservation {
	start := now.Add(startsIn)
	return &domain.Reservation{
		ID:        1,
		RoomID:    1,
		UserID:    requesterID,
		Date:      time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local),
		StartTime: types.NewTimeString(start),
		EndTime:   "23:59",
		Status:    status,
	}
}

func newTestService(repo *fakeReservationRepo, now time.Time) *Service {
	return NewService(
		repo,
		&fakeRoomRepo{room: &domain.Room{ID: 1, BuildingID: 10, OwnerID: ownerID}},
		&fixedTimeProvider{now: now},
		nopLogger{},
	)
}

func TestService_Cancel_ConfirmedInsideCutoff(t *testing.T) {
	// До начала 23 часа - отмена подтвержденного запрещена
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusConfirmed, 23*time.Hour, now)}

	_, err := newTestService(repo, now).Cancel(context.Background(), 1, requesterID)
	assert.ErrorIs(t, err, ErrCancellationWindow)
	assert.Equal(t, domain.StatusConfirmed, repo.reservation.Status)
}

func TestService_Cancel_ConfirmedOutsideCutoff(t *testing.T) {
	// До начала 25 часов - отмена разрешена
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusConfirmed, 25*time.Hour, now)}

	resp, err := newTestService(repo, now).Cancel(context.Background(), 1, requesterID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.NotNil(t, resp.CancelledAt)
}

func TestService_Cancel_PendingAnytime(t *testing.T) {
	// Pending отменяется даже за час до начала
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, time.Hour, now)}

	resp, err := newTestService(repo, now).Cancel(context.Background(), 1, requesterID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestService_Cancel_OnlyRequester(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}
	svc := newTestService(repo, now)

	// Владелец комнаты не может отменить чужое бронирование, для него есть deny
	_, err := svc.Cancel(context.Background(), 1, ownerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Cancel(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_TerminalStatuses(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)

	for _, status := range []domain.ReservationStatus{domain.StatusDenied, domain.StatusCancelled} {
		repo := &fakeReservationRepo{reservation: testReservation(status, 48*time.Hour, now)}
		_, err := newTestService(repo, now).Cancel(context.Background(), 1, requesterID)
		assert.ErrorIs(t, err, ErrInvalidTransition, "status=%s", status)
	}
}

func TestService_Approve(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)

	t.Run("owner approves pending", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}
		resp, err := newTestService(repo, now).Approve(context.Background(), 1, ownerID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	})

	t.Run("requester cannot approve", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}
		_, err := newTestService(repo, now).Approve(context.Background(), 1, requesterID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("non-pending cannot be approved", func(t *testing.T) {
		repo := &fakeReservationRepo{reservation: testReservation(domain.StatusConfirmed, 48*time.Hour, now)}
		_, err := newTestService(repo, now).Approve(context.Background(), 1, ownerID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestService_Deny(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)

	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}
	resp, err := newTestService(repo, now).Deny(context.Background(), 1, ownerID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDenied), resp.Status)

	// Отклоненное бронирование больше не переводится
	_, err = newTestService(repo, now).Deny(context.Background(), 1, ownerID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_GetByID_Access(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}
	svc := newTestService(repo, now)

	// Автор и владелец видят бронирование
	_, err := svc.GetByID(context.Background(), 1, requesterID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, ownerID)
	assert.NoError(t, err)

	// Посторонний - нет
	_, err = svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}

	_, err := newTestService(repo, now).GetByID(context.Background(), 1, requesterID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_GetUserReservations_InvalidStatus(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}

	_, err := newTestService(repo, now).GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: requesterID,
		Status: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetRoomReservations_OwnerOnly(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	repo := &fakeReservationRepo{reservation: testReservation(domain.StatusPending, 48*time.Hour, now)}
	svc := newTestService(repo, now)

	result, err := svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{
		UserID: ownerID,
		RoomID: 1,
	})
	require.NoError(t, err)
	assert.Len(t, result.Reservations, 1)

	_, err = svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{
		UserID: requesterID,
		RoomID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
