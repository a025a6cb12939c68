package book_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	FindPendingBySlot(ctx context.Context, doctorID int64, date string, slotTime types.TimeString) (*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetDoctorProfile(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error)
	GetUserDisplay(ctx context.Context, userID int64) (*userservice.UserDisplay, error)
}

// Notifier интерфейс клиента для NotifyService
type Notifier interface {
	Notify(ctx context.Context, userID int64, content string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
