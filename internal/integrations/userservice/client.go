package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с UserService (справочник пользователей и врачей)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDoctorProfile получает профиль врача по ID пользователя.
// Возвращает ErrDoctorNotFound, если профиля нет или заявка не подтверждена.
func (c *Client) GetDoctorProfile(ctx context.Context, doctorID int64) (*DoctorProfile, error) {
	url := fmt.Sprintf("%s/internal/doctors/%d", c.baseURL, doctorID)

	var profile DoctorProfile
	if err := c.getJSON(ctx, url, &profile, ErrDoctorNotFound); err != nil {
		return nil, err
	}

	if !profile.Approved {
		return nil, ErrDoctorNotFound
	}

	return &profile, nil
}

// GetUserDisplay получает отображаемые данные пользователя по ID
func (c *Client) GetUserDisplay(ctx context.Context, userID int64) (*UserDisplay, error) {
	url := fmt.Sprintf("%s/internal/users/%d/display", c.baseURL, userID)

	var user UserDisplay
	if err := c.getJSON(ctx, url, &user, ErrUserNotFound); err != nil {
		return nil, err
	}

	return &user, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ.
// notFoundErr возвращается при статусе 404.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
