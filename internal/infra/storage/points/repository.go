package points

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	"github.com/prepmate/MIP-BookingService/pkg/dbmetrics"
	"github.com/prepmate/MIP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий журнала баллов
//
// Журнал append-only: репозиторий не содержит операций обновления и удаления.
// Баланс всегда выводится из истории транзакций, а не хранится отдельно.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала баллов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет транзакцию в журнал
// Единственная операция записи
func (r *Repository) Append(ctx context.Context, tx *domain.PointsTransaction) (*domain.PointsTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("points_transactions").
		Columns(
			"user_id",
			"amount",
			"type",
			"description",
		).
		Values(
			tx.UserID,
			tx.Amount,
			tx.Type,
			tx.Description,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tx.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time

	return tx, nil
}

// SumByUser вычисляет баланс пользователя сверткой всей его истории
// Возвращает 0 для пользователя без транзакций
func (r *Repository) SumByUser(ctx context.Context, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(SUM(CASE WHEN type = 'spent' THEN -amount ELSE amount END), 0)",
	).
		From("points_transactions").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumByUser - build select query: %v", ErrBuildQuery, err)
	}

	var balance int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&balance); err != nil {
		return 0, fmt.Errorf("%w: SumByUser - scan balance: %v", ErrScanRow, err)
	}

	return balance, nil
}

// ListByUser получает историю транзакций пользователя, сначала новые
func (r *Repository) ListByUser(ctx context.Context, userID int64, limit, offset uint64) ([]*domain.PointsTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"amount",
		"type",
		"description",
		"created_at",
	).
		From("points_transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.PointsTransaction, 0)
	for rows.Next() {
		var tx domain.PointsTransaction
		var createdAt sql.NullTime

		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Amount,
			&tx.Type,
			&tx.Description,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		tx.CreatedAt = createdAt.Time
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}
