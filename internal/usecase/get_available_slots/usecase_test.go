package get_available_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	_ AppointmentRepository = (*mockAppointmentRepository)(nil)
	_ UserServiceClient     = (*mockUserServiceClient)(nil)
)

type mockAppointmentRepository struct {
	GetPendingTimesFunc func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error)
}

func (m *mockAppointmentRepository) GetPendingTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
	if m.GetPendingTimesFunc != nil {
		return m.GetPendingTimesFunc(ctx, doctorID, date)
	}
	return nil, errors.New("GetPendingTimesFunc not implemented in mock")
}

type mockUserServiceClient struct {
	GetDoctorProfileFunc func(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error)
}

func (m *mockUserServiceClient) GetDoctorProfile(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error) {
	if m.GetDoctorProfileFunc != nil {
		return m.GetDoctorProfileFunc(ctx, doctorID)
	}
	return &userservice.DoctorProfile{UserID: doctorID, Approved: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_NoBookings(t *testing.T) {
	repo := &mockAppointmentRepository{
		GetPendingTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return nil, nil
		},
	}

	uc := NewUseCase(repo, &mockUserServiceClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: "2023-12-01"})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotCatalog, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

func TestExecute_BookedSlotsExcluded(t *testing.T) {
	booked := []types.TimeString{"09:00", "13:30", "17:30"}
	repo := &mockAppointmentRepository{
		GetPendingTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return booked, nil
		},
	}

	uc := NewUseCase(repo, &mockUserServiceClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: "2023-12-01"})
	require.NoError(t, err)

	assert.Len(t, resp.AvailableSlots, len(domain.SlotCatalog)-len(booked))
	for _, b := range booked {
		assert.NotContains(t, resp.AvailableSlots, b)
	}
	assert.Equal(t, booked, resp.BookedSlots)

	// Порядок каталога сохраняется
	assert.Equal(t, types.TimeString("09:30"), resp.AvailableSlots[0])
}

func TestExecute_AllSlotsBooked(t *testing.T) {
	repo := &mockAppointmentRepository{
		GetPendingTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return domain.SlotCatalog, nil
		},
	}

	uc := NewUseCase(repo, &mockUserServiceClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: "2023-12-01"})
	require.NoError(t, err)

	assert.Empty(t, resp.AvailableSlots)
	assert.Len(t, resp.BookedSlots, len(domain.SlotCatalog))
}

func TestExecute_OffCatalogTimesIgnored(t *testing.T) {
	// Историческая запись с нестандартным временем не ломает расчет
	repo := &mockAppointmentRepository{
		GetPendingTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return []types.TimeString{"08:15", "10:00"}, nil
		},
	}

	uc := NewUseCase(repo, &mockUserServiceClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1, Date: "2023-12-01"})
	require.NoError(t, err)

	assert.Len(t, resp.AvailableSlots, len(domain.SlotCatalog)-1)
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("10:00"))
}

func TestExecute_DoctorNotFound(t *testing.T) {
	users := &mockUserServiceClient{
		GetDoctorProfileFunc: func(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error) {
			return nil, userservice.ErrDoctorNotFound
		},
	}

	uc := NewUseCase(&mockAppointmentRepository{}, users, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 99, Date: "2023-12-01"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepository{}, &mockUserServiceClient{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero doctor", &Request{DoctorID: 0, Date: "2023-12-01"}},
		{"empty date", &Request{DoctorID: 1, Date: ""}},
		{"bad date format", &Request{DoctorID: 1, Date: "01.12.2023"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
