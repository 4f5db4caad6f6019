package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case получения доступности комнаты на дату
//
// Результат - консультативное представление: между чтением и созданием
// бронирования доступность может измениться, поэтому авторитетная проверка
// выполняется повторно в create_reservation непосредственно перед записью.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
// Повторный вызов без промежуточных записей возвращает идентичный результат;
// слоты упорядочены по времени начала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: room=%d, date=%s, granularity=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.GranularityMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Загружаем шаблоны комнаты и здания и разрешаем эффективный день:
	// день комнаты выигрывает, если активен и непуст, иначе действует
	// расписание здания
	roomWeek, err := uc.scheduleRepo.GetWeekSchedule(ctx, domain.OwnerRoom, room.ID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get room schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get room schedule: %v", ErrInternal, err)
	}

	buildingWeek, err := uc.scheduleRepo.GetWeekSchedule(ctx, domain.OwnerBuilding, room.BuildingID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get building schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get building schedule: %v", ErrInternal, err)
	}

	day := domain.ResolveEffectiveDay(roomWeek, buildingWeek, req.Date.Weekday())
	if !day.IsBookable() {
		// Неактивный день - пустой набор слотов, не ошибка
		uc.logger.Info("GetAvailability: room=%d closed on %s", req.RoomID, req.Date.Format(domain.DateFormat))
		return &Response{RoomID: req.RoomID, Date: req.Date, Slots: []domain.Slot{}}, nil
	}

	// 4. Получаем занимающие бронирования на эту дату
	// (denied и cancelled не учитываются)
	filter := domain.RoomReservationsFilter{
		RoomID:          req.RoomID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Размечаем интервалы шаблона по бронированиям
	var slots []domain.Slot
	if req.GranularityMinutes > 0 {
		slots = resolveSlotsWithGranularity(day.Intervals, reservations, req.GranularityMinutes)
	} else {
		slots = resolveSlots(day.Intervals, reservations)
	}

	uc.logger.Info("GetAvailability: room=%d, date=%s -> %d slots",
		req.RoomID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots:  slots,
	}, nil
}
