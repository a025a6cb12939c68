package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (domain.StatusStats, error)
	CountByDateSince(ctx context.Context, createdAfter time.Time) ([]domain.DateCount, error)
	TopDoctors(ctx context.Context, limit uint64) ([]domain.DoctorCount, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUserDisplay(ctx context.Context, userID int64) (*userservice.UserDisplay, error)
}

// Notifier интерфейс клиента сервиса уведомлений
type Notifier interface {
	Notify(ctx context.Context, userID int64, content string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
