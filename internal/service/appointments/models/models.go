package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей.
// Движок не сужает выборку по личности вызывающего - единственный фильтр
// по участнику задается явным параметром Search. UserID и IsAdmin
// используются для логирования и решений вызывающего слоя.
type ListAppointmentsRequest struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"isAdmin"`

	Search *int64  `json:"search,omitempty"` // Фильтр по ID участника (опционально)
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Date   *string `json:"date,omitempty"`   // Фильтр по дате приема YYYY-MM-DD (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		ParticipantID: r.Search,
		Date:          r.Date,
	}

	if r.Status != nil {
		status, ok := domain.ParseStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// CompleteAppointmentRequest запрос на завершение приема
type CompleteAppointmentRequest struct {
	AppointmentID int64 `json:"appointmentId"`
	UserID        int64 `json:"userId"`
	IsAdmin       bool  `json:"isAdmin"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	AppointmentID int64 `json:"appointmentId"`
	UserID        int64 `json:"userId"`
	IsAdmin       bool  `json:"isAdmin"`
}

// Response модели

// AppointmentResponse ответ с данными записи на прием
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patientId"`
	DoctorID  int64  `json:"doctorId"`
	Date      string `json:"date"` // "2023-12-01"
	Time      string `json:"time"` // "10:00"
	Status    string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatusStatsResponse количество записей по каждому статусу
type StatusStatsResponse struct {
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// DateCountResponse количество записей, созданных в день
type DateCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TopDoctorResponse врач с количеством записей
type TopDoctorResponse struct {
	DoctorID   int64  `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Count      int64  `json:"count"`
}

// StatsResponse сводная статистика по записям
type StatsResponse struct {
	Total              int64               `json:"total"`
	StatusStats        StatusStatsResponse `json:"statusStats"`
	AppointmentsByDate []DateCountResponse `json:"appointmentsByDate"`
	TopDoctors         []TopDoctorResponse `json:"topDoctors"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Time:      a.Time.String(),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainStats конвертирует агрегированную статистику в DTO.
// Имена врачей в TopDoctors заполняет вызывающий слой.
func FromDomainStats(s *domain.AppointmentStats) *StatsResponse {
	if s == nil {
		return nil
	}

	resp := &StatsResponse{
		Total: s.Total,
		StatusStats: StatusStatsResponse{
			Pending:   s.StatusStats.Pending,
			Completed: s.StatusStats.Completed,
			Cancelled: s.StatusStats.Cancelled,
		},
		AppointmentsByDate: make([]DateCountResponse, len(s.AppointmentsByDate)),
		TopDoctors:         make([]TopDoctorResponse, len(s.TopDoctors)),
	}

	for i, dc := range s.AppointmentsByDate {
		resp.AppointmentsByDate[i] = DateCountResponse{
			Date:  dc.Date,
			Count: dc.Count,
		}
	}

	for i, doc := range s.TopDoctors {
		resp.TopDoctors[i] = TopDoctorResponse{
			DoctorID: doc.DoctorID,
			Count:    doc.Count,
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}
