package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByRoomWithFilter(_ context.Context, _ domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetRoomByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func buildWeek(t *testing.T, day time.Weekday, intervals ...domain.TimeInterval) *domain.WeekSchedule {
	t.Helper()
	week := domain.NewWeekSchedule()
	require.NoError(t, week.SetDay(day, true, intervals))
	return week
}

func newTestUseCase(resRepo *fakeReservationRepo, schedRepo *fakeScheduleRepo) *UseCase {
	return NewUseCase(
		resRepo,
		&fakeRoomRepo{room: &domain.Room{ID: 1, BuildingID: 10}},
		schedRepo,
		nopLogger{},
	)
}

func TestUseCase_Execute_InheritsBuildingSchedule(t *testing.T) {
	// Вторник 2026-03-17: у комнаты расписания нет, действует расписание здания
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, date.Weekday())

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{
			roomWeek:     domain.NewWeekSchedule(),
			buildingWeek: buildWeek(t, time.Tuesday, interval("08:00", "18:00")),
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, slot("08:00", "18:00", domain.SlotAvailable), resp.Slots[0])
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	// Воскресенье не настроено ни у комнаты, ни у здания
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, date.Weekday())

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{
			roomWeek:     domain.NewWeekSchedule(),
			buildingWeek: buildWeek(t, time.Tuesday, interval("08:00", "18:00")),
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_PastDateAllowed(t *testing.T) {
	// Прошедшие даты обслуживаются так же, как будущие
	date := time.Date(2020, 6, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, date.Weekday())

	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{
			roomWeek:     domain.NewWeekSchedule(),
			buildingWeek: buildWeek(t, time.Tuesday, interval("08:00", "18:00")),
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
}

func TestUseCase_Execute_WithGranularity(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{
			reservation("09:30", "10:30", domain.StatusConfirmed),
		}},
		&fakeScheduleRepo{
			roomWeek:     buildWeek(t, time.Tuesday, interval("08:00", "11:30")),
			buildingWeek: domain.NewWeekSchedule(),
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date, GranularityMinutes: 60})
	require.NoError(t, err)

	// 08:00-09:00, 09:00-10:00, 10:00-11:00, 11:00-11:30
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.SlotAvailable, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotOccupied, resp.Slots[1].Status)
	assert.Equal(t, domain.SlotOccupied, resp.Slots[2].Status)
	assert.Equal(t, slot("11:00", "11:30", domain.SlotAvailable), resp.Slots[3])
}

func TestUseCase_Execute_Idempotent(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{
			reservation("10:00", "12:00", domain.StatusPending),
		}},
		&fakeScheduleRepo{
			roomWeek:     buildWeek(t, time.Tuesday, interval("08:00", "18:00")),
			buildingWeek: domain.NewWeekSchedule(),
		},
	)

	first, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{},
		&fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		&fakeScheduleRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID: 99,
		Date:   time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_InvalidGranularity(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{})

	tests := []int{-10, 3, 481}
	for _, granularity := range tests {
		_, err := uc.Execute(context.Background(), &Request{
			RoomID:             1,
			Date:               time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
			GranularityMinutes: granularity,
		})
		assert.ErrorIs(t, err, ErrInvalidGranularity, "granularity=%d", granularity)
	}
}
