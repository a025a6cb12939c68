package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DoctorID int64  // ID врача
	Date     string // Дата YYYY-MM-DD
}

// Response модель ответа со списками слотов
type Response struct {
	DoctorID int64  // ID врача
	Date     string // Дата, на которую запрашивались слоты

	AvailableSlots []types.TimeString // Свободные слоты в порядке каталога
	BookedSlots    []types.TimeString // Занятые (Pending) слоты
}
