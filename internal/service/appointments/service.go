package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием
type Service struct {
	apptRepo   AppointmentRepository
	userClient UserServiceClient
	notifier   Notifier
	logger     Logger

	now func() time.Time
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	userClient UserServiceClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:   apptRepo,
		userClient: userClient,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// GetByID получает запись на прием по ID
// Проверяет права доступа - запись видят только её пациент, её врач или администратор
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if !isAdmin && appt.PatientID != userID && appt.DoctorID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// List получает список записей с фильтрацией.
// Выборка не сужается по личности вызывающего - фильтр по участнику
// задается только явным параметром search, решение о сужении принимает
// вызывающий слой.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d, admin=%v", req.UserID, req.IsAdmin)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	if filter.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *filter.Date); err != nil {
			s.logger.Warn("List: invalid date filter %q for user=%d", *filter.Date, req.UserID)
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}
	}

	appointments, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Complete завершает прием
// Доступно только врачу записи или администратору, запись должна быть активной
func (s *Service) Complete(ctx context.Context, req *models.CompleteAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d by user=%d", req.AppointmentID, req.UserID)

	appt, err := s.getAppointment(ctx, req.AppointmentID, "Complete")
	if err != nil {
		return nil, err
	}

	if !req.IsAdmin && appt.DoctorID != req.UserID {
		s.logger.Warn("Complete: access denied for user=%d to appointment id=%d", req.UserID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	if !appt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", req.AppointmentID, appt.Status)
		return nil, fmt.Errorf("%w: appointment is %s", ErrInvalidTransition, appt.Status)
	}

	// Условное обновление: переход выполняется, только если запись всё еще Pending.
	// Ноль затронутых строк означает, что статус успел измениться конкурентно.
	if err := s.apptRepo.UpdateStatus(ctx, req.AppointmentID, domain.StatusPending, domain.StatusCompleted); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d changed status concurrently", req.AppointmentID)
			return nil, fmt.Errorf("%w: appointment is no longer pending", ErrInvalidTransition)
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCompleted

	s.logger.Info("Complete: successfully completed appointment id=%d", req.AppointmentID)

	// Уведомления после обновления, best-effort
	patientName, doctorName := s.resolveNames(ctx, appt)
	s.notify(ctx, appt.PatientID,
		fmt.Sprintf("Ваш прием с Dr. %s завершен", doctorName))
	s.notify(ctx, appt.DoctorID,
		fmt.Sprintf("Прием с %s завершен", patientName))

	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись на прием
// Доступно пациенту записи, врачу записи или администратору.
// Завершенную или уже отмененную запись отменить нельзя.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", req.AppointmentID, req.UserID)

	appt, err := s.getAppointment(ctx, req.AppointmentID, "Cancel")
	if err != nil {
		return nil, err
	}

	if !req.IsAdmin && appt.PatientID != req.UserID && appt.DoctorID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", req.UserID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", req.AppointmentID, appt.Status)
		return nil, fmt.Errorf("%w: appointment is %s", ErrInvalidTransition, appt.Status)
	}

	if err := s.apptRepo.UpdateStatus(ctx, req.AppointmentID, domain.StatusPending, domain.StatusCancelled); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d changed status concurrently", req.AppointmentID)
			return nil, fmt.Errorf("%w: appointment is no longer pending", ErrInvalidTransition)
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", req.AppointmentID)

	// Слот врача снова свободен, уведомляем обе стороны
	patientName, doctorName := s.resolveNames(ctx, appt)
	s.notify(ctx, appt.PatientID,
		fmt.Sprintf("Ваш прием с Dr. %s на %s %s отменен", doctorName, appt.Date, appt.Time))
	s.notify(ctx, appt.DoctorID,
		fmt.Sprintf("Прием с %s на %s %s отменен", patientName, appt.Date, appt.Time))

	return models.FromDomainAppointment(appt), nil
}

// Stats собирает сводную статистику по записям
// Доступно только администратору (проверяется на уровне HTTP)
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: collecting appointment statistics")

	total, err := s.apptRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	byStatus, err := s.apptRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count by status: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	// Динамика за последние 7 дней по дате создания записи
	since := s.now().AddDate(0, 0, -domain.StatsTrailingDays)
	byDate, err := s.apptRepo.CountByDateSince(ctx, since)
	if err != nil {
		s.logger.Error("Stats: failed to count by date: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	topDoctors, err := s.apptRepo.TopDoctors(ctx, domain.TopDoctorsLimit)
	if err != nil {
		s.logger.Error("Stats: failed to get top doctors: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &domain.AppointmentStats{
		Total:              total,
		StatusStats:        byStatus,
		AppointmentsByDate: byDate,
		TopDoctors:         topDoctors,
	}

	resp := models.FromDomainStats(stats)
	for i := range resp.TopDoctors {
		resp.TopDoctors[i].DoctorName = s.resolveName(ctx, resp.TopDoctors[i].DoctorID)
	}

	s.logger.Info("Stats: collected statistics, total=%d", total)
	return resp, nil
}

// Вспомогательные методы

// getAppointment получает запись по ID и маппит ошибки репозитория
func (s *Service) getAppointment(ctx context.Context, id int64, op string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// resolveNames возвращает отображаемые имена пациента и врача записи.
// Сбой резолва не фатален - имя заменяется плейсхолдером
func (s *Service) resolveNames(ctx context.Context, appt *domain.Appointment) (patientName, doctorName string) {
	return s.resolveName(ctx, appt.PatientID), s.resolveName(ctx, appt.DoctorID)
}

// resolveName возвращает отображаемое имя пользователя
func (s *Service) resolveName(ctx context.Context, userID int64) string {
	user, err := s.userClient.GetUserDisplay(ctx, userID)
	if err != nil {
		s.logger.Warn("resolveName: failed to get user id=%d: %v", userID, err)
		return fmt.Sprintf("пользователь #%d", userID)
	}
	return user.FullName()
}

// notify отправляет уведомление, сбой логируется и не пробрасывается
func (s *Service) notify(ctx context.Context, userID int64, content string) {
	if err := s.notifier.Notify(ctx, userID, content); err != nil {
		s.logger.Warn("notify: failed to notify user id=%d: %v", userID, err)
	}
}
