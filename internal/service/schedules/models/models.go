package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeSlot интервал рабочего времени в пределах дня, полуоткрытый [start, end)
type TimeSlot struct {
	Start string `json:"start"` // "08:00"
	End   string `json:"end"`   // "18:00", допустимо "24:00"
}

// DaySchedule конфигурация одного дня недели
type DaySchedule struct {
	Active    bool       `json:"active"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// WeekSchedule недельное расписание. Отсутствующий день трактуется как
// неактивный
type WeekSchedule struct {
	Monday    *DaySchedule `json:"monday,omitempty"`
	Tuesday   *DaySchedule `json:"tuesday,omitempty"`
	Wednesday *DaySchedule `json:"wednesday,omitempty"`
	Thursday  *DaySchedule `json:"thursday,omitempty"`
	Friday    *DaySchedule `json:"friday,omitempty"`
	Saturday  *DaySchedule `json:"saturday,omitempty"`
	Sunday    *DaySchedule `json:"sunday,omitempty"`
}

// UpdateScheduleRequest запрос на полную замену расписания
type UpdateScheduleRequest struct {
	UserID   int64        `json:"userId"`
	OwnerID  int64        `json:"ownerId"`
	Schedule WeekSchedule `json:"schedule"`
}

// ScheduleResponse ответ с расписанием владельца
type ScheduleResponse struct {
	OwnerType string       `json:"ownerType"` // "room" | "building"
	OwnerID   int64        `json:"ownerId"`
	Schedule  WeekSchedule `json:"schedule"`
}

// RoomScheduleResponse ответ с собственным и эффективным расписанием комнаты.
// Эффективное расписание по дням: день комнаты, если он активен и непуст,
// иначе день здания
type RoomScheduleResponse struct {
	RoomID     int64        `json:"roomId"`
	BuildingID int64        `json:"buildingId"`
	Schedule   WeekSchedule `json:"schedule"`
	Effective  WeekSchedule `json:"effective"`
}

// day возвращает указатель на поле дня недели
func (w *WeekSchedule) day(d time.Weekday) **DaySchedule {
	switch d {
	case time.Monday:
		return &w.Monday
	case time.Tuesday:
		return &w.Tuesday
	case time.Wednesday:
		return &w.Wednesday
	case time.Thursday:
		return &w.Thursday
	case time.Friday:
		return &w.Friday
	case time.Saturday:
		return &w.Saturday
	default:
		return &w.Sunday
	}
}

// ToDomainWeekSchedule конвертирует DTO в domain модель с валидацией.
// Каждый день проходит через SetDay, ошибка любого дня отклоняет весь запрос
func (w *WeekSchedule) ToDomainWeekSchedule() (*domain.WeekSchedule, error) {
	week := domain.NewWeekSchedule()

	for d := time.Sunday; d <= time.Saturday; d++ {
		dto := *w.day(d)
		if dto == nil {
			continue
		}

		intervals := make([]domain.TimeInterval, 0, len(dto.TimeSlots))
		for _, slot := range dto.TimeSlots {
			intervals = append(intervals, domain.TimeInterval{
				Start: types.TimeString(slot.Start),
				End:   types.TimeString(slot.End),
			})
		}

		if err := week.SetDay(d, dto.Active, intervals); err != nil {
			return nil, err
		}
	}

	return week, nil
}

// FromDomainWeekSchedule конвертирует domain модель в DTO
func FromDomainWeekSchedule(week *domain.WeekSchedule) WeekSchedule {
	var dto WeekSchedule
	if week == nil {
		return dto
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		day := week.Day(d)
		if !day.Active && len(day.Intervals) == 0 {
			continue
		}
		*dto.day(d) = fromDomainDay(day)
	}

	return dto
}

// FromEffectiveDays собирает эффективное расписание комнаты по дням
func FromEffectiveDays(roomWeek, buildingWeek *domain.WeekSchedule) WeekSchedule {
	var dto WeekSchedule

	for d := time.Sunday; d <= time.Saturday; d++ {
		day := domain.ResolveEffectiveDay(roomWeek, buildingWeek, d)
		if !day.IsBookable() {
			continue
		}
		*dto.day(d) = fromDomainDay(day)
	}

	return dto
}

func fromDomainDay(day domain.DaySchedule) *DaySchedule {
	slots := make([]TimeSlot, 0, len(day.Intervals))
	for _, interval := range day.Intervals {
		slots = append(slots, TimeSlot{
			Start: interval.Start.String(),
			End:   interval.End.String(),
		})
	}
	return &DaySchedule{Active: day.Active, TimeSlots: slots}
}
