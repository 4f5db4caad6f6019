package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения комнат и зданий
// CRUD комнат и зданий живет в административном сервисе,
// здесь нужны только чтения для проверок и денормализации.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoomByID получает комнату по ID вместе с владельцем здания
// OwnerID берется из buildings - он нужен для проверки прав
// на подтверждение и отклонение бронирований.
func (r *Repository) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.building_id",
		"b.owner_id",
		"r.name",
		"r.category",
		"r.capacity",
		"r.hourly_price",
		"r.is_free",
		"r.created_at",
		"r.updated_at",
	).
		From("rooms r").
		Join("buildings b ON b.id = r.building_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.BuildingID,
		&room.OwnerID,
		&room.Name,
		&room.Category,
		&room.Capacity,
		&room.HourlyPrice,
		&room.IsFree,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// GetBuildingByID получает здание по ID
func (r *Repository) GetBuildingByID(ctx context.Context, id int64) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"street",
		"number",
		"city",
		"state",
		"postal_code",
		"created_at",
		"updated_at",
	).
		From("buildings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBuildingByID - build select query: %v", ErrBuildQuery, err)
	}

	var building domain.Building
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&building.ID,
		&building.OwnerID,
		&building.Name,
		&building.Street,
		&building.Number,
		&building.City,
		&building.State,
		&building.PostalCode,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBuildingByID - scan building: %v", ErrScanRow, err)
	}

	building.CreatedAt = createdAt.Time
	building.UpdatedAt = updatedAt.Time

	return &building, nil
}
