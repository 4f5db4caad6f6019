package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case создания бронирования
//
// Авторитетная проверка конфликтов: клиентскому снимку доступности не
// доверяем, проверка и вставка выполняются одной сериализуемой транзакцией
// с блокировкой бронирований комнаты на дату (FOR UPDATE). Вторым эшелоном
// двойное бронирование исключает exclusion constraint в БД: при гонке
// двух вставок проигравшая получает ErrTimeConflict, а не тихий успех.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, date=%s, interval=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату и здание (для владельца и денормализации)
	room, err := uc.roomRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	building, err := uc.roomRepo.GetBuildingByID(ctx, room.BuildingID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get building id=%d: %v", room.BuildingID, err)
		return nil, fmt.Errorf("%w: failed to get building: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 3. Проверка и вставка - одна логическая единица
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Разрешаем эффективное расписание на день недели запроса
		roomWeek, err := uc.scheduleRepo.GetWeekSchedule(txCtx, domain.OwnerRoom, room.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get room schedule: %v", err)
			return fmt.Errorf("%w: failed to get room schedule: %v", ErrInternal, err)
		}

		buildingWeek, err := uc.scheduleRepo.GetWeekSchedule(txCtx, domain.OwnerBuilding, room.BuildingID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get building schedule: %v", err)
			return fmt.Errorf("%w: failed to get building schedule: %v", ErrInternal, err)
		}

		day := domain.ResolveEffectiveDay(roomWeek, buildingWeek, req.Date.Weekday())

		// 3.2. Интервал должен лежать целиком в рабочих часах
		// (проверяется до конфликтов - запрос вне часов работы
		// отклоняется независимо от занятости)
		if err := validateWithinOperatingHours(day, req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("CreateReservation: interval %s-%s outside operating hours for room=%d on %s",
				req.StartTime, req.EndTime, req.RoomID, req.Date.Format(domain.DateFormat))
			return err
		}

		// 3.3. Читаем занимающие бронирования с блокировкой (FOR UPDATE)
		filter := domain.RoomReservationsFilter{
			RoomID:          req.RoomID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		existing, err := uc.reservationRepo.GetByRoomWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.4. Проверяем пересечение с занимающими бронированиями
		if conflict := findConflict(existing, req.StartTime, req.EndTime); conflict != nil {
			uc.logger.Warn("CreateReservation: conflict with reservation id=%d (%s-%s, status=%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime, conflict.Status)
			return ErrTimeConflict
		}

		// 3.5. Считаем стоимость: почасовая цена на дробные часы,
		// бесплатная комната всегда дает 0
		durationMinutes, err := req.StartTime.MinutesUntil(req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: failed to compute duration: %v", ErrInternal, err)
		}
		totalPrice := room.PriceFor(durationMinutes)

		// 3.6. Создаем бронирование в начальном статусе pending
		reservation := &domain.Reservation{
			RoomID:       req.RoomID,
			UserID:       req.UserID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Status:       domain.StatusPending,
			TotalPrice:   totalPrice,
			RoomName:     room.Name,
			BuildingName: building.Name,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Проигрыш в гонке на уровне БД - такой же конфликт
			if errors.Is(err, reservationRepo.ErrOverlapConflict) {
				uc.logger.Warn("CreateReservation: lost insert race for room=%d, date=%s, interval=%s-%s",
					req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total_price=%.2f",
		result.ID, result.TotalPrice)

	return &Response{
		ID:           result.ID,
		RoomID:       result.RoomID,
		UserID:       result.UserID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		TotalPrice:   result.TotalPrice,
		RoomName:     result.RoomName,
		BuildingName: result.BuildingName,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
