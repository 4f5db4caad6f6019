package update_building_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedules"
)

const (
	msgInvalidBuildingID  = "некорректный ID здания"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgBuildingNotFound   = "здание не найдено"
	msgForbidden          = "изменять расписание может только владелец"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/buildings/{buildingId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	buildingID, err := strconv.ParseInt(vars["buildingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /buildings/{buildingId}/schedule - Invalid building ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBuildingID)
		return
	}

	userID, err := handlers.UserID(r)
	if err != nil {
		h.logger.Warn("PUT /buildings/{buildingId}/schedule - Missing user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req UpdateBuildingScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /buildings/{buildingId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBuildingSchedule(r.Context(), req.ToServiceRequest(buildingID, userID))
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrBuildingNotFound):
			h.logger.Warn("PUT /buildings/{buildingId}/schedule - Building not found: building_id=%d", buildingID)
			handlers.RespondNotFound(w, msgBuildingNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PUT /buildings/{buildingId}/schedule - Access denied: building_id=%d, user_id=%d",
				buildingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrInvalidSchedule):
			h.logger.Warn("PUT /buildings/{buildingId}/schedule - Invalid schedule: building_id=%d, error=%v",
				buildingID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /buildings/{buildingId}/schedule - Invalid input: building_id=%d, error=%v",
				buildingID, err)
			handlers.RespondBadRequest(w, msgInvalidBuildingID)

		default:
			h.logger.Error("PUT /buildings/{buildingId}/schedule - Failed to update schedule: building_id=%d, error=%v",
				buildingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /buildings/{buildingId}/schedule - Schedule updated: building_id=%d, user_id=%d",
		buildingID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
