package get_room_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidQuery  = "некорректные параметры фильтрации"
	msgRoomNotFound  = "комната не найдена"
	msgForbidden     = "список бронирований доступен только владельцу"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/reservations?startDate=...&endDate=...&status=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/reservations - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, err := handlers.UserID(r)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/reservations - Missing user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	serviceReq, err := parseQuery(r.URL.Query(), roomID, userID)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/reservations - Invalid query: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetRoomReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/reservations - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{roomId}/reservations - Access denied: room_id=%d, user_id=%d",
				roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/reservations - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /rooms/{roomId}/reservations - Failed to get reservations: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomId}/reservations - Reservations retrieved: room_id=%d, count=%d",
		roomID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
