package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// slotStore общее in-memory хранилище для сквозного сценария
// "бронирование - отмена - повторное бронирование": бронирование и отмена
// работают с одними и теми же записями, как с одной таблицей
type slotStore struct {
	nextID int64
	appts  map[int64]*domain.Appointment
}

func newSlotStore() *slotStore {
	return &slotStore{appts: make(map[int64]*domain.Appointment)}
}

func (s *slotStore) FindPendingBySlot(ctx context.Context, doctorID int64, date string, slotTime types.TimeString) (*domain.Appointment, error) {
	for _, a := range s.appts {
		if a.DoctorID == doctorID && a.Date == date && a.Time == slotTime && a.Status == domain.StatusPending {
			return a, nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (s *slotStore) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.nextID++
	appt.ID = s.nextID
	stored := *appt
	s.appts[appt.ID] = &stored
	return appt, nil
}

func (s *slotStore) getByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := s.appts[id]; ok {
		return a, nil
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (s *slotStore) updateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	a, ok := s.appts[id]
	if !ok || a.Status != from {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Status = to
	return nil
}

// directoryStub все врачи существуют и подтверждены
type directoryStub struct{}

func (directoryStub) GetDoctorProfile(ctx context.Context, doctorID int64) (*userservice.DoctorProfile, error) {
	return &userservice.DoctorProfile{UserID: doctorID, Approved: true}, nil
}

func (directoryStub) GetUserDisplay(ctx context.Context, userID int64) (*userservice.UserDisplay, error) {
	return &userservice.UserDisplay{ID: userID, Firstname: "Иван", Lastname: "Петров"}, nil
}

type notifierStub struct{}

func (notifierStub) Notify(ctx context.Context, userID int64, content string) error { return nil }

// txStub выполняет fn без реальной транзакции
type txStub struct{}

func (txStub) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Отмена освобождает слот: после отмены Pending-записи тот же слот
// можно забронировать снова, получив новую запись.
func TestRebookingAfterCancel(t *testing.T) {
	ctx := context.Background()
	store := newSlotStore()

	bookUC := book_appointment.NewUseCase(store, directoryStub{}, notifierStub{}, txStub{}, nopLogger{})

	svcRepo := &mockAppointmentRepository{
		GetByIDFunc:      store.getByID,
		UpdateStatusFunc: store.updateStatus,
	}
	svc := NewService(svcRepo, &mockUserServiceClient{}, &mockNotifier{}, nopLogger{})

	bookRequest := func(patientID int64) *book_appointment.Request {
		return &book_appointment.Request{
			PatientID:  patientID,
			DoctorID:   2,
			Date:       "2023-12-01",
			Time:       types.TimeString("10:00"),
			DoctorName: "Анна Смирнова",
		}
	}

	// Первое бронирование занимает слот
	first, err := bookUC.Execute(ctx, bookRequest(1))
	require.NoError(t, err)

	// Пока запись Pending, слот занят для всех остальных
	_, err = bookUC.Execute(ctx, bookRequest(3))
	require.ErrorIs(t, err, book_appointment.ErrSlotTaken)

	// Пациент отменяет запись
	cancelled, err := svc.Cancel(ctx, &models.CancelAppointmentRequest{
		AppointmentID: first.ID,
		UserID:        1,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	// Слот свободен - повторное бронирование проходит и создает новую запись
	second, err := bookUC.Execute(ctx, bookRequest(3))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(3), second.PatientID)
	assert.Equal(t, string(domain.StatusPending), second.Status)
}
