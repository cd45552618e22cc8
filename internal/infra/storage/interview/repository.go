package interview

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	"github.com/prepmate/MIP-BookingService/pkg/dbmetrics"
	"github.com/prepmate/MIP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с интервью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервью
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает интервью-снапшот при подтверждении бронирования
func (r *Repository) Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("interviews").
		Columns(
			"booking_id",
			"interviewer_id",
			"candidate_id",
			"slot_id",
			"specialization",
			"scheduled_at",
			"duration_minutes",
			"status",
		).
		Values(
			iv.BookingID,
			iv.InterviewerID,
			iv.CandidateID,
			iv.SlotID,
			iv.Specialization,
			iv.ScheduledAt,
			iv.DurationMinutes,
			iv.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&iv.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	iv.CreatedAt = createdAt.Time
	iv.UpdatedAt = updatedAt.Time

	return iv, nil
}

// GetByID получает интервью по ID
// Внутри транзакции строка блокируется через FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_id",
		"interviewer_id",
		"candidate_id",
		"slot_id",
		"specialization",
		"scheduled_at",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("interviews").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var iv domain.Interview
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&iv.ID,
		&iv.BookingID,
		&iv.InterviewerID,
		&iv.CandidateID,
		&iv.SlotID,
		&iv.Specialization,
		&iv.ScheduledAt,
		&iv.DurationMinutes,
		&iv.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan interview: %v", ErrScanRow, err)
	}

	iv.CreatedAt = createdAt.Time
	iv.UpdatedAt = updatedAt.Time

	return &iv, nil
}

// UpdateStatus обновляет статус интервью
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.InterviewStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("interviews").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInterviewNotFound
	}

	return nil
}
