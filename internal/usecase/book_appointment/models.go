package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на бронирование записи на прием
type Request struct {
	PatientID  int64            // ID пациента (из аутентификации)
	DoctorID   int64            // ID врача
	Date       string           // Дата приема YYYY-MM-DD
	Time       types.TimeString // Метка слота из каталога (например, "10:00")
	DoctorName string           // Отображаемое имя врача для текста уведомления
}

// UserInfo отображаемые данные участника записи
type UserInfo struct {
	ID        int64
	Firstname string
	Lastname  string
	Pic       string
}

// Response модель ответа с созданной записью на прием
type Response struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	Date      string
	Time      types.TimeString
	Status    string

	Patient UserInfo
	Doctor  UserInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}
