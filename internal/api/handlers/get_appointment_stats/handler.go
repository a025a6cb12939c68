package get_appointment_stats

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ только для администратора"
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

// Handle GET /api/v1/appointments/stats
// Доступно только администратору
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/stats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /appointments/stats - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/stats - Stats collected: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
