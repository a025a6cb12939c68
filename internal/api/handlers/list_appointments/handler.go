package list_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidSearch = "некорректный параметр search, ожидается ID участника"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?search=&status=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListAppointmentsRequest{
		UserID:  userID,
		IsAdmin: middleware.IsAdmin(r.Context()),
	}

	query := r.URL.Query()

	if search := query.Get("search"); search != "" {
		participantID, err := strconv.ParseInt(search, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid search param %q: %v", search, err)
			handlers.RespondBadRequest(w, msgInvalidSearch)
			return
		}
		req.Search = &participantID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if date := query.Get("date"); date != "" {
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments for user_id=%d", len(result.Appointments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
