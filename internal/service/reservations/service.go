package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований
//
// Переходы статусов: pending -> confirmed/denied (только владелец здания),
// pending/confirmed -> cancelled (только автор бронирования). Подтвержденное
// бронирование можно отменить не позднее чем за сутки до начала.
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID возвращает бронирование по ID
// Доступно автору бронирования и владельцу здания комнаты
func (s *Service) GetByID(ctx context.Context, reservationID, userID int64) (*models.ReservationResponse, error) {
	if reservationID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and userID must be positive", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, "GetByID", reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != userID {
		room, err := s.getRoom(ctx, "GetByID", reservation.RoomID)
		if err != nil {
			return nil, err
		}
		if room.OwnerID != userID {
			s.logger.Warn("GetByID: user=%d has no access to reservation id=%d", userID, reservationID)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations возвращает бронирования пользователя,
// опционально отфильтрованные по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var status *domain.ReservationStatus
	if req.Status != nil {
		converted, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = &converted
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserReservations: failed to get reservations for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - failed to get reservations: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// GetRoomReservations возвращает бронирования комнаты
// Доступно только владельцу здания комнаты
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	if req.RoomID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: roomID and userID must be positive", ErrInvalidInput)
	}

	room, err := s.getRoom(ctx, "GetRoomReservations", req.RoomID)
	if err != nil {
		return nil, err
	}

	if room.OwnerID != req.UserID {
		s.logger.Warn("GetRoomReservations: user=%d is not the owner of room id=%d", req.UserID, req.RoomID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: failed to get reservations for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - failed to get reservations: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Доступно только автору бронирования. Pending отменяется в любой момент,
// confirmed - не позднее чем за сутки до начала
func (s *Service) Cancel(ctx context.Context, reservationID, userID int64) (*models.ReservationResponse, error) {
	if reservationID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and userID must be positive", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, "Cancel", reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != userID {
		s.logger.Warn("Cancel: user=%d is not the requester of reservation id=%d", userID, reservationID)
		return nil, ErrAccessDenied
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", reservationID, reservation.Status)
		return nil, ErrInvalidTransition
	}

	// Для подтвержденных бронирований действует окно отмены
	if reservation.Status == domain.StatusConfirmed {
		startsAt, err := reservation.StartsAt()
		if err != nil {
			s.logger.Error("Cancel: failed to compute start of reservation id=%d: %v", reservationID, err)
			return nil, fmt.Errorf("%w: Cancel - failed to compute reservation start: %v", ErrInternal, err)
		}

		cutoff := startsAt.Add(-domain.CancellationCutoffHours * time.Hour)
		if s.timeProvider.Now().After(cutoff) {
			s.logger.Warn("Cancel: reservation id=%d starts at %s, cancellation window has passed",
				reservationID, startsAt.Format(time.RFC3339))
			return nil, ErrCancellationWindow
		}
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID); err != nil {
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to cancel reservation: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled by user=%d", reservationID, userID)

	return s.reload(ctx, "Cancel", reservationID)
}

// Approve подтверждает pending бронирование
// Доступно только владельцу здания комнаты
func (s *Service) Approve(ctx context.Context, reservationID, ownerID int64) (*models.ReservationResponse, error) {
	return s.decide(ctx, "Approve", reservationID, ownerID, domain.StatusConfirmed)
}

// Deny отклоняет pending бронирование
// Доступно только владельцу здания комнаты
func (s *Service) Deny(ctx context.Context, reservationID, ownerID int64) (*models.ReservationResponse, error) {
	return s.decide(ctx, "Deny", reservationID, ownerID, domain.StatusDenied)
}

// decide общий переход pending -> confirmed/denied с проверкой владельца
func (s *Service) decide(ctx context.Context, op string, reservationID, ownerID int64, target domain.ReservationStatus) (*models.ReservationResponse, error) {
	if reservationID <= 0 || ownerID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and ownerID must be positive", ErrInvalidInput)
	}

	reservation, err := s.getReservation(ctx, op, reservationID)
	if err != nil {
		return nil, err
	}

	room, err := s.getRoom(ctx, op, reservation.RoomID)
	if err != nil {
		return nil, err
	}

	if room.OwnerID != ownerID {
		s.logger.Warn("%s: user=%d is not the owner of room id=%d", op, ownerID, reservation.RoomID)
		return nil, ErrAccessDenied
	}

	if reservation.Status != domain.StatusPending {
		s.logger.Warn("%s: reservation id=%d is in status %s, expected pending", op, reservationID, reservation.Status)
		return nil, ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, target); err != nil {
		s.logger.Error("%s: failed to update status of reservation id=%d: %v", op, reservationID, err)
		return nil, fmt.Errorf("%w: %s - failed to update status: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: reservation id=%d moved to status %s by owner=%d", op, reservationID, target, ownerID)

	return s.reload(ctx, op, reservationID)
}

// getReservation загружает бронирование с маппингом ошибок репозитория
func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: failed to get reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - failed to get reservation: %v", ErrInternal, op, err)
	}
	return reservation, nil
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

// reload перечитывает бронирование после изменения для актуального ответа
func (s *Service) reload(ctx context.Context, op string, id int64) (*models.ReservationResponse, error) {
	updated, err := s.getReservation(ctx, op, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(updated), nil
}
