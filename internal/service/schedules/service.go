package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedules/models"
)

// Service сервис управления недельными расписаниями комнат и зданий
//
// Запись всегда заменяет расписание целиком: частичное применение при
// некорректном дне исключено валидацией до начала транзакции.
type Service struct {
	scheduleRepo ScheduleRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	scheduleRepo ScheduleRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetRoomSchedule возвращает собственное и эффективное расписание комнаты
func (s *Service) GetRoomSchedule(ctx context.Context, roomID int64) (*models.RoomScheduleResponse, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	room, err := s.getRoom(ctx, "GetRoomSchedule", roomID)
	if err != nil {
		return nil, err
	}

	roomWeek, err := s.scheduleRepo.GetWeekSchedule(ctx, domain.OwnerRoom, room.ID)
	if err != nil {
		s.logger.Error("GetRoomSchedule: failed to get room schedule for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - failed to get room schedule: %v", ErrInternal, err)
	}

	buildingWeek, err := s.scheduleRepo.GetWeekSchedule(ctx, domain.OwnerBuilding, room.BuildingID)
	if err != nil {
		s.logger.Error("GetRoomSchedule: failed to get building schedule for building=%d: %v", room.BuildingID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - failed to get building schedule: %v", ErrInternal, err)
	}

	return &models.RoomScheduleResponse{
		RoomID:     room.ID,
		BuildingID: room.BuildingID,
		Schedule:   models.FromDomainWeekSchedule(roomWeek),
		Effective:  models.FromEffectiveDays(roomWeek, buildingWeek),
	}, nil
}

// UpdateRoomSchedule полностью заменяет расписание комнаты
// Доступно только владельцу здания комнаты
func (s *Service) UpdateRoomSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	if req.OwnerID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: roomID and userID must be positive", ErrInvalidInput)
	}

	room, err := s.getRoom(ctx, "UpdateRoomSchedule", req.OwnerID)
	if err != nil {
		return nil, err
	}

	if room.OwnerID != req.UserID {
		s.logger.Warn("UpdateRoomSchedule: user=%d is not the owner of room id=%d", req.UserID, req.OwnerID)
		return nil, ErrAccessDenied
	}

	return s.replace(ctx, "UpdateRoomSchedule", domain.OwnerRoom, room.ID, &req.Schedule)
}

// UpdateBuildingSchedule полностью заменяет расписание здания
// Доступно только владельцу здания
func (s *Service) UpdateBuildingSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	if req.OwnerID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: buildingID and userID must be positive", ErrInvalidInput)
	}

	building, err := s.roomRepo.GetBuildingByID(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrBuildingNotFound) {
			s.logger.Warn("UpdateBuildingSchedule: building id=%d not found", req.OwnerID)
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("UpdateBuildingSchedule: failed to get building id=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: UpdateBuildingSchedule - failed to get building: %v", ErrInternal, err)
	}

	if building.OwnerID != req.UserID {
		s.logger.Warn("UpdateBuildingSchedule: user=%d is not the owner of building id=%d", req.UserID, req.OwnerID)
		return nil, ErrAccessDenied
	}

	return s.replace(ctx, "UpdateBuildingSchedule", domain.OwnerBuilding, building.ID, &req.Schedule)
}

// replace валидирует DTO и заменяет расписание владельца в транзакции
func (s *Service) replace(ctx context.Context, op string, ownerType domain.ScheduleOwnerType, ownerID int64, dto *models.WeekSchedule) (*models.ScheduleResponse, error) {
	week, err := dto.ToDomainWeekSchedule()
	if err != nil {
		s.logger.Warn("%s: invalid schedule for %s id=%d: %v", op, ownerType, ownerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.Replace(txCtx, ownerType, ownerID, week)
	})
	if err != nil {
		s.logger.Error("%s: failed to replace schedule for %s id=%d: %v", op, ownerType, ownerID, err)
		return nil, fmt.Errorf("%w: %s - failed to replace schedule: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: schedule replaced for %s id=%d", op, ownerType, ownerID)

	return &models.ScheduleResponse{
		OwnerType: string(ownerType),
		OwnerID:   ownerID,
		Schedule:  models.FromDomainWeekSchedule(week),
	}, nil
}

// getRoom загружает комнату с маппингом ошибок репозитория
func (s *Service) getRoom(ctx context.Context, op string, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: failed to get room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - failed to get room: %v", ErrInternal, op, err)
	}
	return room, nil
}
