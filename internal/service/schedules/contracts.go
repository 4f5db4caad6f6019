package schedules

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetWeekSchedule(ctx context.Context, ownerType domain.ScheduleOwnerType, ownerID int64) (*domain.WeekSchedule, error)
	Replace(ctx context.Context, ownerType domain.ScheduleOwnerType, ownerID int64, week *domain.WeekSchedule) error
}

// RoomRepository интерфейс репозитория комнат и зданий
type RoomRepository interface {
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	GetBuildingByID(ctx context.Context, id int64) (*domain.Building, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
