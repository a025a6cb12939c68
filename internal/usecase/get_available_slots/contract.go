package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	// GetPendingTimes возвращает времена активных (Pending) записей врача на дату
	GetPendingTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetDoctorProfile(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
