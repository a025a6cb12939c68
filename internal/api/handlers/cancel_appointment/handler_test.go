package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type mockService struct {
	CancelFunc func(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error)
}

func (m *mockService) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	return m.CancelFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, path, nil)
	req.Header.Set("X-User-ID", "1")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &mockService{
		CancelFunc: func(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
			assert.Equal(t, int64(10), req.AppointmentID)
			assert.Equal(t, int64(1), req.UserID)
			return &models.AppointmentResponse{ID: 10, Status: "Cancelled"}, nil
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "/api/v1/appointments/10/cancel")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"access denied", appointments.ErrAccessDenied, http.StatusForbidden},
		{"already terminal", appointments.ErrInvalidTransition, http.StatusConflict},
		{"internal", appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				CancelFunc: func(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
					return nil, tt.err
				},
			}
			h := NewHandler(svc, nopLogger{})

			rec := doRequest(h, "/api/v1/appointments/10/cancel")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	h := NewHandler(&mockService{}, nopLogger{})

	rec := doRequest(h, "/api/v1/appointments/abc/cancel")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
