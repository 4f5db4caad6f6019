package get_availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// slotStatusOf возвращает статус слота, занятого бронированием
func slotStatusOf(res *domain.Reservation) domain.SlotStatus {
	if res.Status == domain.StatusConfirmed {
		return domain.SlotOccupied
	}
	return domain.SlotPending
}

// resolveSlots размечает сырые интервалы шаблона по занимающим бронированиям
// Каждый интервал режется на подынтервалы в точках начала/конца бронирований:
// занятые части получают статус pending/occupied, остаток - available.
//
// Предусловия: intervals отсортированы и не пересекаются (инвариант шаблона),
// reservations отсортированы по start_time и не пересекаются между собой
// (инвариант хранилища).
func resolveSlots(intervals []domain.TimeInterval, reservations []*domain.Reservation) []domain.Slot {
	slots := make([]domain.Slot, 0, len(intervals))

	for _, interval := range intervals {
		cursor := interval.Start

		for _, res := range reservations {
			if !res.Occupies() || !res.Overlaps(interval.Start, interval.End) {
				continue
			}

			// Обрезаем бронирование по границам интервала
			occStart := maxTime(res.StartTime, interval.Start)
			occEnd := minTime(res.EndTime, interval.End)

			if cursor.IsBefore(occStart) {
				slots = append(slots, domain.Slot{Start: cursor, End: occStart, Status: domain.SlotAvailable})
			}

			slots = append(slots, domain.Slot{Start: occStart, End: occEnd, Status: slotStatusOf(res)})
			cursor = occEnd
		}

		if cursor.IsBefore(interval.End) {
			slots = append(slots, domain.Slot{Start: cursor, End: interval.End, Status: domain.SlotAvailable})
		}
	}

	return slots
}

// resolveSlotsWithGranularity разбивает каждый интервал шаблона на единицы
// фиксированного размера (неполная последняя единица обрезается по границе
// интервала) и присваивает каждой единице статус пересекающего ее
// бронирования. Любое пересечение, даже частичное, делает единицу
// недоступной; подтвержденное бронирование имеет приоритет над ожидающим.
func resolveSlotsWithGranularity(intervals []domain.TimeInterval, reservations []*domain.Reservation, granularity int) []domain.Slot {
	slots := make([]domain.Slot, 0, len(intervals))

	for _, interval := range intervals {
		unitStart := interval.Start

		for unitStart.IsBefore(interval.End) {
			unitEnd, err := unitStart.AddMinutes(granularity)
			if err != nil || unitEnd.IsAfter(interval.End) {
				// Неполная единица у границы интервала обрезается
				unitEnd = interval.End
			}

			slots = append(slots, domain.Slot{
				Start:  unitStart,
				End:    unitEnd,
				Status: unitStatus(unitStart, unitEnd, reservations),
			})

			unitStart = unitEnd
		}
	}

	return slots
}

// unitStatus возвращает статус единицы отображения по пересекающим ее
// бронированиям
func unitStatus(start, end types.TimeString, reservations []*domain.Reservation) domain.SlotStatus {
	status := domain.SlotAvailable

	for _, res := range reservations {
		if !res.Occupies() || !res.Overlaps(start, end) {
			continue
		}
		if res.Status == domain.StatusConfirmed {
			return domain.SlotOccupied
		}
		status = domain.SlotPending
	}

	return status
}

func maxTime(a, b types.TimeString) types.TimeString {
	if a.IsAfter(b) {
		return a
	}
	return b
}

func minTime(a, b types.TimeString) types.TimeString {
	if a.IsBefore(b) {
		return a
	}
	return b
}
