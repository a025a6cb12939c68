package get_appointment_stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type mockService struct {
	StatsFunc func(ctx context.Context) (*models.StatsResponse, error)
}

func (m *mockService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	return m.StatsFunc(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, userID, adminFlag string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/stats", nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if adminFlag != "" {
		req.Header.Set("X-User-Admin", adminFlag)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_AdminGetsStats(t *testing.T) {
	svc := &mockService{
		StatsFunc: func(ctx context.Context) (*models.StatsResponse, error) {
			return &models.StatsResponse{
				Total: 42,
				StatusStats: models.StatusStatsResponse{
					Pending: 20, Completed: 15, Cancelled: 7,
				},
			}, nil
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "1", "true")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(42), resp.Total)
	assert.Equal(t, int64(20), resp.StatusStats.Pending)
}

func TestHandle_NonAdminForbidden(t *testing.T) {
	h := NewHandler(&mockService{}, nopLogger{})

	rec := doRequest(h, "1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_Unauthenticated(t *testing.T) {
	h := NewHandler(&mockService{}, nopLogger{})

	rec := doRequest(h, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
