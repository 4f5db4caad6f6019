package schedules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedules/models"
)

type fakeScheduleRepo struct {
	roomWeek     *domain.WeekSchedule
	buildingWeek *domain.WeekSchedule
	replaced     *domain.WeekSchedule
	replacedFor  domain.ScheduleOwnerType
}

func (f *fakeScheduleRepo) GetWeekSchedule(_ context.Context, ownerType domain.ScheduleOwnerType, _ int64) (*domain.WeekSchedule, error) {
	if ownerType == domain.OwnerRoom {
		return f.roomWeek, nil
	}
	return f.buildingWeek, nil
}

func (f *fakeScheduleRepo) Replace(_ context.Context, ownerType domain.ScheduleOwnerType, _ int64, week *domain.WeekSchedule) error {
	f.replaced = week
	f.replacedFor = ownerType
	return nil
}

type fakeRoomRepo struct {
	room     *domain.Room
	building *domain.Building
}

func (f *fakeRoomRepo) GetRoomByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, nil
}

func (f *fakeRoomRepo) GetBuildingByID(_ context.Context, _ int64) (*domain.Building, error) {
	return f.building, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const ownerID = int64(100)

func newTestService(schedRepo *fakeScheduleRepo) *Service {
	return NewService(
		schedRepo,
		&fakeRoomRepo{
			room:     &domain.Room{ID: 1, BuildingID: 10, OwnerID: ownerID},
			building: &domain.Building{ID: 10, OwnerID: ownerID},
		},
		fakeTxManager{},
		nopLogger{},
	)
}

func validWeekDTO() models.WeekSchedule {
	return models.WeekSchedule{
		Monday: &models.DaySchedule{
			Active:    true,
			TimeSlots: []models.TimeSlot{{Start: "08:00", End: "18:00"}},
		},
	}
}

func TestService_UpdateRoomSchedule(t *testing.T) {
	t.Run("owner replaces schedule", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		resp, err := newTestService(repo).UpdateRoomSchedule(context.Background(), &models.UpdateScheduleRequest{
			UserID:   ownerID,
			OwnerID:  1,
			Schedule: validWeekDTO(),
		})
		require.NoError(t, err)

		assert.Equal(t, "room", resp.OwnerType)
		assert.Equal(t, domain.OwnerRoom, repo.replacedFor)
		require.NotNil(t, repo.replaced)
		assert.True(t, repo.replaced.Day(time.Monday).IsBookable())

		require.NotNil(t, resp.Schedule.Monday)
		assert.Equal(t, "08:00", resp.Schedule.Monday.TimeSlots[0].Start)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		_, err := newTestService(repo).UpdateRoomSchedule(context.Background(), &models.UpdateScheduleRequest{
			UserID:   ownerID + 1,
			OwnerID:  1,
			Schedule: validWeekDTO(),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.replaced)
	})

	t.Run("invalid schedule rejected as a whole", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		_, err := newTestService(repo).UpdateRoomSchedule(context.Background(), &models.UpdateScheduleRequest{
			UserID:  ownerID,
			OwnerID: 1,
			Schedule: models.WeekSchedule{
				Monday: &models.DaySchedule{
					Active:    true,
					TimeSlots: []models.TimeSlot{{Start: "08:00", End: "18:00"}},
				},
				Tuesday: &models.DaySchedule{
					Active:    true,
					TimeSlots: []models.TimeSlot{{Start: "18:00", End: "08:00"}},
				},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Nil(t, repo.replaced, "partial apply is not allowed")
	})

	t.Run("overlapping intervals rejected", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		_, err := newTestService(repo).UpdateRoomSchedule(context.Background(), &models.UpdateScheduleRequest{
			UserID:  ownerID,
			OwnerID: 1,
			Schedule: models.WeekSchedule{
				Monday: &models.DaySchedule{
					Active: true,
					TimeSlots: []models.TimeSlot{
						{Start: "08:00", End: "12:00"},
						{Start: "11:00", End: "15:00"},
					},
				},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestService_UpdateBuildingSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{}
	resp, err := newTestService(repo).UpdateBuildingSchedule(context.Background(), &models.UpdateScheduleRequest{
		UserID:   ownerID,
		OwnerID:  10,
		Schedule: validWeekDTO(),
	})
	require.NoError(t, err)
	assert.Equal(t, "building", resp.OwnerType)
	assert.Equal(t, domain.OwnerBuilding, repo.replacedFor)
}

func TestService_GetRoomSchedule_EffectiveView(t *testing.T) {
	roomWeek := domain.NewWeekSchedule()
	require.NoError(t, roomWeek.SetDay(time.Wednesday, true, []domain.TimeInterval{
		{Start: "10:00", End: "14:00"},
	}))

	buildingWeek := domain.NewWeekSchedule()
	require.NoError(t, buildingWeek.SetDay(time.Tuesday, true, []domain.TimeInterval{
		{Start: "08:00", End: "18:00"},
	}))
	require.NoError(t, buildingWeek.SetDay(time.Wednesday, true, []domain.TimeInterval{
		{Start: "08:00", End: "18:00"},
	}))

	repo := &fakeScheduleRepo{roomWeek: roomWeek, buildingWeek: buildingWeek}

	resp, err := newTestService(repo).GetRoomSchedule(context.Background(), 1)
	require.NoError(t, err)

	// Собственное расписание комнаты содержит только среду
	assert.Nil(t, resp.Schedule.Tuesday)
	require.NotNil(t, resp.Schedule.Wednesday)

	// Эффективное: вторник наследуется от здания, среда переопределена комнатой
	require.NotNil(t, resp.Effective.Tuesday)
	assert.Equal(t, "08:00", resp.Effective.Tuesday.TimeSlots[0].Start)
	require.NotNil(t, resp.Effective.Wednesday)
	assert.Equal(t, "10:00", resp.Effective.Wednesday.TimeSlots[0].Start)
}
