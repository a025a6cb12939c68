package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
)

// Compile-time checks
var (
	_ AppointmentRepository = (*mockAppointmentRepository)(nil)
	_ UserServiceClient     = (*mockUserServiceClient)(nil)
	_ Notifier              = (*mockNotifier)(nil)
	_ Logger                = (*nopLogger)(nil)
)

type mockAppointmentRepository struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Appointment, error)
	ListFunc             func(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	UpdateStatusFunc     func(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
	CountFunc            func(ctx context.Context) (int64, error)
	CountByStatusFunc    func(ctx context.Context) (domain.StatusStats, error)
	CountByDateSinceFunc func(ctx context.Context, createdAfter time.Time) ([]domain.DateCount, error)
	TopDoctorsFunc       func(ctx context.Context, limit uint64) ([]domain.DoctorCount, error)
}

func (m *mockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *mockAppointmentRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *mockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, from, to)
	}
	return errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *mockAppointmentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, errors.New("CountFunc not implemented in mock")
}

func (m *mockAppointmentRepository) CountByStatus(ctx context.Context) (domain.StatusStats, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return domain.StatusStats{}, errors.New("CountByStatusFunc not implemented in mock")
}

func (m *mockAppointmentRepository) CountByDateSince(ctx context.Context, createdAfter time.Time) ([]domain.DateCount, error) {
	if m.CountByDateSinceFunc != nil {
		return m.CountByDateSinceFunc(ctx, createdAfter)
	}
	return nil, errors.New("CountByDateSinceFunc not implemented in mock")
}

func (m *mockAppointmentRepository) TopDoctors(ctx context.Context, limit uint64) ([]domain.DoctorCount, error) {
	if m.TopDoctorsFunc != nil {
		return m.TopDoctorsFunc(ctx, limit)
	}
	return nil, errors.New("TopDoctorsFunc not implemented in mock")
}

type mockUserServiceClient struct {
	GetUserDisplayFunc func(ctx context.Context, userID int64) (*userservice.UserDisplay, error)
}

func (m *mockUserServiceClient) GetUserDisplay(ctx context.Context, userID int64) (*userservice.UserDisplay, error) {
	if m.GetUserDisplayFunc != nil {
		return m.GetUserDisplayFunc(ctx, userID)
	}
	return &userservice.UserDisplay{ID: userID, Firstname: "Иван", Lastname: "Петров"}, nil
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, userID int64, content string) error

	notified []string
}

func (m *mockNotifier) Notify(ctx context.Context, userID int64, content string) error {
	m.notified = append(m.notified, content)
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, userID, content)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
