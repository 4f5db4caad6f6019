package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Repository репозиторий недельных расписаний комнат и зданий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekSchedule загружает недельное расписание владельца
// Если у владельца нет ни одной строки расписания, возвращает пустое
// расписание (все дни неактивны) - это валидное состояние, означающее
// "расписание не задано" (комната наследует расписание здания).
func (r *Repository) GetWeekSchedule(ctx context.Context, ownerType domain.ScheduleOwnerType, ownerID int64) (*domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"d.weekday",
		"d.active",
		"i.start_time",
		"i.end_time",
	).
		From("schedule_days d").
		LeftJoin("schedule_intervals i ON i.day_id = d.id").
		Where(squirrel.Eq{"d.owner_type": string(ownerType), "d.owner_id": ownerID}).
		OrderBy("d.weekday ASC", "i.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	type dayRows struct {
		active    bool
		intervals []domain.TimeInterval
	}
	days := make(map[time.Weekday]*dayRows)

	for rows.Next() {
		var weekday int
		var active bool
		var start, end *types.TimeString

		if err := rows.Scan(&weekday, &active, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetWeekSchedule - scan row: %v", ErrScanRow, err)
		}

		day, ok := days[time.Weekday(weekday)]
		if !ok {
			day = &dayRows{active: active}
			days[time.Weekday(weekday)] = day
		}

		// LEFT JOIN дает строку с NULL интервалом для дня без интервалов
		if start != nil && end != nil {
			day.intervals = append(day.intervals, domain.TimeInterval{Start: *start, End: *end})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	week := domain.NewWeekSchedule()
	for weekday, day := range days {
		if err := week.SetDay(weekday, day.active, day.intervals); err != nil {
			return nil, fmt.Errorf("%w: GetWeekSchedule - owner %s/%d weekday %d: %v",
				ErrCorruptedSchedule, ownerType, ownerID, weekday, err)
		}
	}

	return week, nil
}

// Replace заменяет недельное расписание владельца целиком
// Удаляет все дни (интервалы каскадно) и вставляет новые.
// Вызывается внутри транзакции через txmanager, чтобы параллельные
// чтения не видели наполовину замененное расписание.
func (r *Repository) Replace(ctx context.Context, ownerType domain.ScheduleOwnerType, ownerID int64, week *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_days").
		Where(squirrel.Eq{"owner_type": string(ownerType), "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := week.Day(weekday)
		if !day.Active && len(day.Intervals) == 0 {
			// Незаданные дни не храним - отсутствие строки равно неактивному дню
			continue
		}

		insertDay, dayArgs, err := psqlbuilder.Insert("schedule_days").
			Columns("owner_type", "owner_id", "weekday", "active").
			Values(string(ownerType), ownerID, int(weekday), day.Active).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Replace - build day insert: %v", ErrBuildQuery, err)
		}

		var dayID int64
		if err := executor.QueryRowContext(ctx, insertDay, dayArgs...).Scan(&dayID); err != nil {
			return fmt.Errorf("%w: Replace - insert day: %v", ErrExecQuery, err)
		}

		if len(day.Intervals) == 0 {
			continue
		}

		insertIntervals := psqlbuilder.Insert("schedule_intervals").
			Columns("day_id", "start_time", "end_time")
		for _, interval := range day.Intervals {
			insertIntervals = insertIntervals.Values(dayID, interval.Start, interval.End)
		}

		query, args, err := insertIntervals.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Replace - build intervals insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Replace - insert intervals: %v", ErrExecQuery, err)
		}
	}

	return nil
}
