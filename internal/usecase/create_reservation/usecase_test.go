package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	existing  []*domain.Reservation
	createErr error
	created   *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *res
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeReservationRepo) GetByRoomWithFilter(_ context.Context, _ domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeRoomRepo struct {
	room     *domain.Room
	roomErr  error
	building *domain.Building
}

func (f *fakeRoomRepo) GetRoomByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeRoomRepo) GetBuildingByID(_ context.Context, _ int64) (*domain.Building, error) {
	return f.building, nil
}

type fakeScheduleRepo struct {
	roomWeek     *domain.WeekSchedule
	buildingWeek *domain.WeekSchedule
}

func (f *fakeScheduleRepo) GetWeekSchedule(_ context.Context, ownerType domain.ScheduleOwnerType, _ int64) (*domain.WeekSchedule, error) {
	if ownerType == domain.OwnerRoom {
		return f.roomWeek, nil
	}
	return f.buildingWeek, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Вторник с расписанием здания 08:00-18:00, почасовая цена 40
func newTestUseCase(t *testing.T, resRepo *fakeReservationRepo) *UseCase {
	t.Helper()

	buildingWeek := domain.NewWeekSchedule()
	require.NoError(t, buildingWeek.SetDay(time.Tuesday, true, []domain.TimeInterval{
		{Start: "08:00", End: "18:00"},
	}))

	return NewUseCase(
		resRepo,
		&fakeRoomRepo{
			room:     &domain.Room{ID: 1, BuildingID: 10, Name: "Переговорная 1", HourlyPrice: 40.0},
			building: &domain.Building{ID: 10, Name: "Главный корпус"},
		},
		&fakeScheduleRepo{roomWeek: domain.NewWeekSchedule(), buildingWeek: buildingWeek},
		fakeTxManager{},
		nopLogger{},
	)
}

func testRequest(start, end string) *Request {
	return &Request{
		RoomID:    1,
		UserID:    7,
		Date:      time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), // вторник
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), testRequest("09:00", "11:30"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	// 2.5 часа по 40
	assert.InDelta(t, 100.0, resp.TotalPrice, 1e-9)
	assert.Equal(t, "Переговорная 1", resp.RoomName)
	assert.Equal(t, "Главный корпус", resp.BuildingName)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestUseCase_Execute_OutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	// Рабочие часы 08:00-18:00, запрос 19:00-20:00
	_, err := uc.Execute(context.Background(), testRequest("19:00", "20:00"))
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	// Частично за границей тоже отклоняется
	_, err = uc.Execute(context.Background(), testRequest("17:00", "19:00"))
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{
		existing: []*domain.Reservation{
			{StartTime: "10:00", EndTime: "12:00", Status: domain.StatusPending},
		},
	})

	_, err := uc.Execute(context.Background(), testRequest("11:00", "13:00"))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestUseCase_Execute_BoundaryTouchIsNotConflict(t *testing.T) {
	repo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{StartTime: "09:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(t, repo)

	// Полуоткрытые интервалы: конец 11:00 и начало 11:00 не пересекаются
	_, err := uc.Execute(context.Background(), testRequest("11:00", "12:00"))
	assert.NoError(t, err)
}

func TestUseCase_Execute_InactiveReservationsDoNotConflict(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{
		existing: []*domain.Reservation{
			{StartTime: "10:00", EndTime: "12:00", Status: domain.StatusCancelled},
			{StartTime: "10:00", EndTime: "12:00", Status: domain.StatusDenied},
		},
	})

	_, err := uc.Execute(context.Background(), testRequest("10:00", "12:00"))
	assert.NoError(t, err)
}

func TestUseCase_Execute_LostInsertRace(t *testing.T) {
	// Проигрыш гонки на exclusion constraint БД отдается как конфликт
	uc := newTestUseCase(t, &fakeReservationRepo{
		createErr: reservationRepo.ErrOverlapConflict,
	})

	_, err := uc.Execute(context.Background(), testRequest("10:00", "12:00"))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestUseCase_Execute_FreeRoomHasZeroPrice(t *testing.T) {
	buildingWeek := domain.NewWeekSchedule()
	require.NoError(t, buildingWeek.SetDay(time.Tuesday, true, []domain.TimeInterval{
		{Start: "08:00", End: "18:00"},
	}))

	uc := NewUseCase(
		&fakeReservationRepo{},
		&fakeRoomRepo{
			room:     &domain.Room{ID: 1, BuildingID: 10, HourlyPrice: 40.0, IsFree: true},
			building: &domain.Building{ID: 10},
		},
		&fakeScheduleRepo{roomWeek: domain.NewWeekSchedule(), buildingWeek: buildingWeek},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), testRequest("09:00", "11:00"))
	require.NoError(t, err)
	assert.Zero(t, resp.TotalPrice)
}

func TestUseCase_Execute_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), testRequest("12:00", "10:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), testRequest("10:00", "10:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
