package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL "duplicate key value violates unique constraint"
const pgUniqueViolation = "23505"

// pendingSlotIndex имя частичного уникального индекса (doctor_id, date, time) WHERE status = 'Pending'
const pendingSlotIndex = "appointments_pending_slot_uniq"

// pgSerializationFailure код ошибки PostgreSQL "could not serialize access" (SQLSTATE 40001).
// Под serializable-изоляцией проигравший гонки за слот получает именно этот код,
// а не 23505.
const pgSerializationFailure = "40001"

var appointmentColumns = []string{
	"id",
	"patient_id",
	"doctor_id",
	"date",
	"time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей на прием
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на прием.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Частичный уникальный индекс по (doctor_id, date, time) WHERE status = 'Pending'
// страхует инвариант "не более одной Pending-записи на слот" на уровне БД:
// нарушение транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_id",
			"doctor_id",
			"date",
			"time",
			"status",
		).
		Values(
			appt.PatientID,
			appt.DoctorID,
			appt.Date,
			appt.Time,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		// Проигравший конкурентной вставки: под serializable-изоляцией это
		// 40001, нарушение индекса напрямую - 23505. Оба значат "слот занят".
		if isPendingSlotViolation(err) || IsSerializationFailure(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись на прием по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
}

// FindPendingBySlot ищет Pending-запись на слот (doctorID, date, time).
// Внутри транзакции добавляет FOR UPDATE: конкурентные бронирования одного слота
// сериализуются на блокировке строки, второй вызов увидит уже созданную запись.
// Возвращает ErrAppointmentNotFound, если слот свободен.
func (r *Repository) FindPendingBySlot(ctx context.Context, doctorID int64, date string, slotTime types.TimeString) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"doctor_id": doctorID,
			"date":      date,
			"time":      slotTime,
			"status":    domain.StatusPending,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingBySlot - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
}

// GetPendingTimes получает метки времени всех Pending-записей врача на дату.
// Completed/Cancelled записи слот не занимают и в выборку не попадают.
func (r *Repository) GetPendingTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time").
		From("appointments").
		Where(squirrel.Eq{
			"doctor_id": doctorID,
			"date":      date,
			"status":    domain.StatusPending,
		}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetPendingTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPendingTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// List получает записи на прием с фильтрацией.
// Фильтры комбинируются через AND; ParticipantID ищет по обеим ролям
// (patient_id OR doctor_id). Пустой фильтр возвращает все записи.
// Сортировка: date DESC, time DESC (лексикографический порядок HH:MM
// совпадает с хронологическим внутри дня).
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("date DESC", "time DESC")

	if filter.ParticipantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"patient_id": *filter.ParticipantID},
			squirrel.Eq{"doctor_id": *filter.ParticipantID},
		})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus переводит запись из статуса from в статус to.
// Условный однострочный UPDATE: если запись не в статусе from, строк не затронуто
// и возвращается ErrAppointmentNotFound - вызывающий слой различает
// "не найдена" и "недопустимый переход" по предварительному чтению.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
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
		return ErrAppointmentNotFound
	}

	return nil
}

// Count возвращает общее количество записей на прием
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus возвращает количество записей по каждому статусу
func (r *Repository) CountByStatus(ctx context.Context) (domain.StatusStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("appointments").
		GroupBy("status").
		ToSql()

	if err != nil {
		return domain.StatusStats{}, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.StatusStats{}, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var stats domain.StatusStats
	for rows.Next() {
		var (
			status domain.AppointmentStatus
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return domain.StatusStats{}, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}

		switch status {
		case domain.StatusPending:
			stats.Pending = count
		case domain.StatusCompleted:
			stats.Completed = count
		case domain.StatusCancelled:
			stats.Cancelled = count
		}
	}

	if err := rows.Err(); err != nil {
		return domain.StatusStats{}, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// CountByDateSince возвращает количество записей, созданных после createdAfter,
// сгруппированных по дате приема (по дате ASC)
func (r *Repository) CountByDateSince(ctx context.Context, createdAfter time.Time) ([]domain.DateCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "COUNT(*)").
		From("appointments").
		Where(squirrel.GtOrEq{"created_at": createdAfter}).
		GroupBy("date").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateSince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.DateCount, 0)
	for rows.Next() {
		var dc domain.DateCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByDateSince - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByDateSince - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// TopDoctors возвращает врачей по убыванию количества записей.
// Порядок при равном количестве записей не детерминирован.
func (r *Repository) TopDoctors(ctx context.Context, limit uint64) ([]domain.DoctorCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("doctor_id", "COUNT(*)").
		From("appointments").
		GroupBy("doctor_id").
		OrderBy("COUNT(*) DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TopDoctors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TopDoctors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]domain.DoctorCount, 0)
	for rows.Next() {
		var dc domain.DoctorCount
		if err := rows.Scan(&dc.DoctorID, &dc.Count); err != nil {
			return nil, fmt.Errorf("%w: TopDoctors - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TopDoctors - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// scanAppointment сканирует одну запись на прием
func (r *Repository) scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.DoctorID,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanAppointment - scan row: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей на прием
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.PatientID,
			&appt.DoctorID,
			&appt.Date,
			&appt.Time,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isPendingSlotViolation проверяет, что ошибка - нарушение частичного
// уникального индекса Pending-слота
func isPendingSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgUniqueViolation && pqErr.Constraint == pendingSlotIndex
}

// IsSerializationFailure проверяет, что ошибка - сбой сериализации конкурентных
// транзакций (SQLSTATE 40001). Postgres может сообщить его и на коммите, поэтому
// вызывающий слой проверяет им результат транзакционного менеджера.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgSerializationFailure
}
