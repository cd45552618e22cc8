package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	"github.com/prepmate/MIP-BookingService/pkg/dbmetrics"
	"github.com/prepmate/MIP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с уведомлениями
//
// Запись уведомлений выполняется вне транзакций жизненного цикла:
// сбой уведомления никогда не откатывает бронирование.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query, args, err := psqlbuilder.Insert("notifications").
		Columns(
			"user_id",
			"booking_id",
			"type",
			"message",
		).
		Values(
			n.UserID,
			n.BookingID,
			n.Type,
			n.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	// Намеренно r.db, а не executor из контекста: уведомления пишутся
	// вне транзакции жизненного цикла
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&n.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// ListByUser получает уведомления пользователя, сначала новые
func (r *Repository) ListByUser(ctx context.Context, userID int64, onlyUnread bool) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"booking_id",
		"type",
		"message",
		"is_read",
		"created_at",
	).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC")

	if onlyUnread {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.BookingID,
			&n.Type,
			&n.Message,
			&n.IsRead,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление пользователя прочитанным
// Возвращает ErrNotificationNotFound, если уведомление не существует или
// принадлежит другому пользователю
func (r *Repository) MarkRead(ctx context.Context, id int64, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
