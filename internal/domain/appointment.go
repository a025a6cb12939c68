package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a booked visit of a patient to a doctor.
// Date хранится как строка YYYY-MM-DD без конвертации таймзон,
// Time - фиксированная метка слота из каталога (например, "10:00").
type Appointment struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	Date      string
	Time      types.TimeString
	Status    AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the appointment still occupies its slot
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsTerminal returns true if the appointment reached a final state.
// Из терминального статуса переходов нет.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCompleted returns true if the appointment can transition to Completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusPending
}

// CanBeCancelled returns true if the appointment can transition to Cancelled.
// Повторная отмена не считается допустимой - переход строго Pending -> Cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending
}

// AppointmentFilter фильтр для выборки записей на прием.
// Все условия комбинируются через AND; ParticipantID ищет по обеим ролям
// (patient_id OR doctor_id). Пустой фильтр возвращает все записи.
type AppointmentFilter struct {
	ParticipantID *int64             // ID пользователя в роли пациента ИЛИ врача (опционально)
	Status        *AppointmentStatus // Фильтр по статусу (опционально)
	Date          *string            // Точная дата YYYY-MM-DD (опционально)
}
