package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	userClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
)

// UseCase use case бронирования записи на прием.
// Единственная операция сервиса с инвариантом check-then-act: проверка
// занятости слота и вставка выполняются в одной сериализуемой транзакции,
// чтение - с блокировкой строки (FOR UPDATE в репозитории).
type UseCase struct {
	apptRepo   AppointmentRepository
	userClient UserServiceClient
	notifier   Notifier
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	userClient UserServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:   apptRepo,
		userClient: userClient,
		notifier:   notifier,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case бронирования.
// Уведомления отправляются после коммита и не влияют на результат бронирования:
// запись уже создана, сбой уведомления логируется как warning.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%d, doctor=%d, date=%s, time=%s",
		req.PatientID, req.DoctorID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что врач существует и заявка подтверждена.
	// Занятость слота это НЕ проверяет - она перепроверяется в транзакции,
	// проверкам вызывающей стороны движок не доверяет.
	if _, err := uc.userClient.GetDoctorProfile(ctx, req.DoctorID); err != nil {
		if errors.Is(err, userClient.ErrDoctorNotFound) {
			uc.logger.Warn("BookAppointment: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookAppointment: failed to get doctor profile id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor profile: %v", ErrInternal, err)
	}

	// 3. Получаем отображаемые данные участников (для уведомлений и ответа)
	patient, err := uc.userClient.GetUserDisplay(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("BookAppointment: failed to get patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	doctor, err := uc.userClient.GetUserDisplay(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: doctor user id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookAppointment: failed to get doctor user id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Проверка занятости слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ищем существующую Pending-запись на слот с блокировкой строки.
		// Конкурентные бронирования сериализуются здесь: победитель вставляет
		// запись, проигравший видит её и получает ErrSlotTaken.
		existing, err := uc.apptRepo.FindPendingBySlot(txCtx, req.DoctorID, req.Date, req.Time)
		if err != nil && !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			if apptRepo.IsSerializationFailure(err) {
				uc.logger.Warn("BookAppointment: serialization failure on slot check, doctor=%d, date=%s, time=%s",
					req.DoctorID, req.Date, req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		if existing != nil {
			uc.logger.Warn("BookAppointment: slot taken, doctor=%d, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			return ErrSlotTaken
		}

		// 4.2. Создаем Pending-запись
		created, err := uc.apptRepo.Create(txCtx, &domain.Appointment{
			PatientID: req.PatientID,
			DoctorID:  req.DoctorID,
			Date:      req.Date,
			Time:      req.Time,
			Status:    domain.StatusPending,
		})
		if err != nil {
			// Страховка на уровне БД: частичный уникальный индекс (23505)
			// либо сбой сериализации (40001) у проигравшего гонки
			if errors.Is(err, apptRepo.ErrSlotTaken) || apptRepo.IsSerializationFailure(err) {
				uc.logger.Warn("BookAppointment: slot taken on insert, doctor=%d, date=%s, time=%s",
					req.DoctorID, req.Date, req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Сбой сериализации на коммите: Postgres сообщает проигравшему
		// конкурентной транзакции 40001 уже при COMMIT
		if apptRepo.IsSerializationFailure(err) {
			uc.logger.Warn("BookAppointment: serialization failure on commit, doctor=%d, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	// 5. Уведомления после коммита, best-effort
	uc.notify(ctx, req.PatientID,
		fmt.Sprintf("Вы записались на прием к Dr. %s на %s %s", req.DoctorName, req.Date, req.Time))
	uc.notify(ctx, req.DoctorID,
		fmt.Sprintf("У вас новая запись на прием с %s на %s в %s", patient.FullName(), req.Date, req.Time))

	return &Response{
		ID:        result.ID,
		PatientID: result.PatientID,
		DoctorID:  result.DoctorID,
		Date:      result.Date,
		Time:      result.Time,
		Status:    string(result.Status),
		Patient: UserInfo{
			ID:        patient.ID,
			Firstname: patient.Firstname,
			Lastname:  patient.Lastname,
			Pic:       patient.Pic,
		},
		Doctor: UserInfo{
			ID:        doctor.ID,
			Firstname: doctor.Firstname,
			Lastname:  doctor.Lastname,
			Pic:       doctor.Pic,
		},
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// notify отправляет уведомление, сбой логируется и не пробрасывается
func (uc *UseCase) notify(ctx context.Context, userID int64, content string) {
	if err := uc.notifier.Notify(ctx, userID, content); err != nil {
		uc.logger.Warn("BookAppointment: failed to notify user id=%d: %v", userID, err)
	}
}
