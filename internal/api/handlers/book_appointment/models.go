package book_appointment

import (
	"time"

	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	DoctorID   int64  `json:"doctorId"`
	Date       string `json:"date"`       // "2023-12-01"
	Time       string `json:"time"`       // "10:00"
	DoctorName string `json:"doctorName"` // Отображаемое имя врача для текста уведомления
}

// UserInfoResponse отображаемые данные участника
type UserInfoResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Pic       string `json:"pic,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patientId"`
	DoctorID  int64  `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`

	Patient UserInfoResponse `json:"patient"`
	Doctor  UserInfoResponse `json:"doctor"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(patientID int64) *bookAppointment.Request {
	return &bookAppointment.Request{
		PatientID:  patientID,
		DoctorID:   r.DoctorID,
		Date:       r.Date,
		Time:       types.TimeString(r.Time),
		DoctorName: r.DoctorName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		PatientID: resp.PatientID,
		DoctorID:  resp.DoctorID,
		Date:      resp.Date,
		Time:      resp.Time.String(),
		Status:    resp.Status,
		Patient: UserInfoResponse{
			ID:        resp.Patient.ID,
			Firstname: resp.Patient.Firstname,
			Lastname:  resp.Patient.Lastname,
			Pic:       resp.Patient.Pic,
		},
		Doctor: UserInfoResponse{
			ID:        resp.Doctor.ID,
			Firstname: resp.Doctor.Firstname,
			Lastname:  resp.Doctor.Lastname,
			Pic:       resp.Doctor.Pic,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
