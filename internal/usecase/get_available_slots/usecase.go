package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	userClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
)

// UseCase use case для получения доступных слотов врача на дату.
// Результат - снимок на момент чтения: слот может быть занят между
// просмотром и бронированием, окончательную проверку делает бронирование.
type UseCase struct {
	apptRepo   AppointmentRepository
	userClient UserServiceClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:   apptRepo,
		userClient: userClient,
		logger:     logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s", req.DoctorID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что врач существует и подтвержден
	if _, err := uc.userClient.GetDoctorProfile(ctx, req.DoctorID); err != nil {
		if errors.Is(err, userClient.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor profile id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor profile: %v", ErrInternal, err)
	}

	// 3. Времена активных записей врача на дату.
	// Только Pending блокирует слот: завершенные и отмененные записи
	// освобождают время.
	booked, err := uc.apptRepo.GetPendingTimes(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 4. Доступные слоты = каталог минус занятые
	available := subtractBookedSlots(booked)

	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s: %d available, %d booked",
		req.DoctorID, req.Date, len(available), len(booked))

	return &Response{
		DoctorID:       req.DoctorID,
		Date:           req.Date,
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}
