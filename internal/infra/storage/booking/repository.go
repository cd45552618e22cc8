package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	"github.com/prepmate/MIP-BookingService/pkg/dbmetrics"
	"github.com/prepmate/MIP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Вызывается только внутри сериализуемой транзакции usecase создания
// бронирования, где слот уже заблокирован через FOR UPDATE
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_id",
			"candidate_id",
			"points_spent",
			"status",
		).
		Values(
			booking.SlotID,
			booking.CandidateID,
			booking.PointsSpent,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется через FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveBySlotID получает неотмененное бронирование слота
// Возвращает ErrBookingNotFound, если активного бронирования нет
// Инвариант: у слота не более одного активного бронирования
func (r *Repository) GetActiveBySlotID(ctx context.Context, slotID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.NotEq{"status": domain.BookingStatusCancelled}).
		OrderBy("id DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByCandidateID получает бронирования кандидата вместе с данными слотов
// Опционально фильтрует по статусу; сортировка - сначала ближайшие по времени слота
func (r *Repository) GetByCandidateID(ctx context.Context, candidateID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingWithSlotColumns()...).
		From("bookings b").
		Join("time_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"b.candidate_id": candidateID}).
		OrderBy("s.start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCandidateID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCandidateID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithSlot(rows)
}

// GetByInterviewerID получает бронирования на слоты интервьюера
// Опционально фильтрует по статусу
func (r *Repository) GetByInterviewerID(ctx context.Context, interviewerID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingWithSlotColumns()...).
		From("bookings b").
		Join("time_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"s.interviewer_id": interviewerID}).
		OrderBy("s.start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInterviewerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInterviewerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithSlot(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// SetInterviewID связывает бронирование с созданным интервью
func (r *Repository) SetInterviewID(ctx context.Context, id int64, interviewID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("interview_id", interviewID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetInterviewID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetInterviewID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetInterviewID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingStatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func bookingColumns() []string {
	return []string{
		"id",
		"slot_id",
		"candidate_id",
		"points_spent",
		"status",
		"interview_id",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	}
}

func bookingWithSlotColumns() []string {
	return []string{
		"b.id",
		"b.slot_id",
		"b.candidate_id",
		"b.points_spent",
		"b.status",
		"b.interview_id",
		"b.cancellation_reason",
		"b.cancelled_at",
		"b.created_at",
		"b.updated_at",
		"s.start_time",
		"s.end_time",
		"s.specialization",
		"s.interviewer_id",
	}
}

// scanBooking сканирует одну строку бронирования
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.CandidateID,
		&booking.PointsSpent,
		&booking.Status,
		&booking.InterviewID,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookingsWithSlot сканирует результаты JOIN-запроса в слайс бронирований со слотами
func (r *Repository) scanBookingsWithSlot(rows *sql.Rows) ([]*domain.BookingWithSlot, error) {
	bookings := make([]*domain.BookingWithSlot, 0)

	for rows.Next() {
		var b domain.BookingWithSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.SlotID,
			&b.CandidateID,
			&b.PointsSpent,
			&b.Status,
			&b.InterviewID,
			&b.CancellationReason,
			&b.CancelledAt,
			&createdAt,
			&updatedAt,
			&b.SlotStartTime,
			&b.SlotEndTime,
			&b.SlotSpecialization,
			&b.InterviewerID,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookingsWithSlot - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingsWithSlot - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
