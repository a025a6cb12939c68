package book_appointment

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Compile-time checks
var (
	_ AppointmentRepository = (*mockAppointmentRepository)(nil)
	_ UserServiceClient     = (*mockUserServiceClient)(nil)
	_ Notifier              = (*mockNotifier)(nil)
	_ TransactionManager    = (*mockTxManager)(nil)
	_ Logger                = (*nopLogger)(nil)
)

type mockAppointmentRepository struct {
	FindPendingBySlotFunc func(ctx context.Context, doctorID int64, date string, slotTime types.TimeString) (*domain.Appointment, error)
	CreateFunc            func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

func (m *mockAppointmentRepository) FindPendingBySlot(ctx context.Context, doctorID int64, date string, slotTime types.TimeString) (*domain.Appointment, error) {
	if m.FindPendingBySlotFunc != nil {
		return m.FindPendingBySlotFunc(ctx, doctorID, date, slotTime)
	}
	return nil, errors.New("FindPendingBySlotFunc not implemented in mock")
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appt)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

type mockUserServiceClient struct {
	GetDoctorProfileFunc func(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error)
	GetUserDisplayFunc   func(ctx context.Context, userID int64) (*userservice.UserDisplay, error)
}

func (m *mockUserServiceClient) GetDoctorProfile(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error) {
	if m.GetDoctorProfileFunc != nil {
		return m.GetDoctorProfileFunc(ctx, doctorID)
	}
	return &userservice.DoctorProfile{UserID: doctorID, Approved: true}, nil
}

func (m *mockUserServiceClient) GetUserDisplay(ctx context.Context, userID int64) (*userservice.UserDisplay, error) {
	if m.GetUserDisplayFunc != nil {
		return m.GetUserDisplayFunc(ctx, userID)
	}
	return &userservice.UserDisplay{ID: userID, Firstname: "Иван", Lastname: "Петров"}, nil
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, userID int64, content string) error

	mu       sync.Mutex
	notified []string
}

func (m *mockNotifier) Notify(ctx context.Context, userID int64, content string) error {
	m.mu.Lock()
	m.notified = append(m.notified, content)
	m.mu.Unlock()
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, userID, content)
	}
	return nil
}

// mockTxManager выполняет fn без реальной транзакции
type mockTxManager struct {
	DoSerializableFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.DoSerializableFunc != nil {
		return m.DoSerializableFunc(ctx, fn)
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
