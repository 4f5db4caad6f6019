package update_room_schedule

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/schedules/models"
)

// UpdateRoomScheduleRequest HTTP request model. Расписание заменяется целиком,
// отсутствующий день становится неактивным
type UpdateRoomScheduleRequest struct {
	Schedule models.WeekSchedule `json:"schedule"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRoomScheduleRequest) ToServiceRequest(roomID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:   userID,
		OwnerID:  roomID,
		Schedule: r.Schedule,
	}
}
