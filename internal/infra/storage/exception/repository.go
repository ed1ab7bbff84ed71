package exception

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const table = "schedule_exceptions"

// Repository репозиторий исключений из расписания (выходные, праздники)
type Repository struct {
	db dbmetrics.DBExecutor
}

// ShopWideBarberID барбер исключения, закрывающего весь салон
const ShopWideBarberID int64 = 0

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает исключение на дату
func (r *Repository) Create(ctx context.Context, ex *domain.ScheduleException) (*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("barber_id", "date", "is_closed", "reason").
		Values(ex.BarberID, ex.Date.Format(domain.DateFormat), ex.IsClosed, ex.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ex.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateException
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	ex.CreatedAt = createdAt.Time
	return ex, nil
}

// ListByBarber возвращает исключения барбера в диапазоне дат [from, to] включительно
func (r *Repository) ListByBarber(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(barberID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.ScheduleException, 0)
	for rows.Next() {
		var ex domain.ScheduleException
		var createdAt sql.NullTime
		if err := rows.Scan(&ex.ID, &ex.BarberID, &ex.Date, &ex.IsClosed, &ex.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan row: %w", ErrScanRow, err)
		}
		ex.CreatedAt = createdAt.Time
		exceptions = append(exceptions, &ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - rows error: %w", ErrScanRow, err)
	}

	return exceptions, nil
}

// Delete удаляет исключение барбера
func (r *Repository) Delete(ctx context.Context, barberID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "barber_id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

// barber_id = 0 - закрытие всего салона, оно действует на каждого барбера
func buildListQuery(barberID int64, from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "barber_id", "date", "is_closed", "reason", "created_at").
		From(table).
		Where(squirrel.Eq{"barber_id": []int64{ShopWideBarberID, barberID}}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC").
		ToSql()
}
