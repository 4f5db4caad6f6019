package update_building_schedule

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/schedules/models"
)

// UpdateBuildingScheduleRequest HTTP request model. Расписание заменяется
// целиком, отсутствующий день становится неактивным
type UpdateBuildingScheduleRequest struct {
	Schedule models.WeekSchedule `json:"schedule"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBuildingScheduleRequest) ToServiceRequest(buildingID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:   userID,
		OwnerID:  buildingID,
		Schedule: r.Schedule,
	}
}
