package notifyhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с NotifyHub
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyHub
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Push отправляет уведомление пользователю
func (c *Client) Push(ctx context.Context, req *PushRequest) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// PushWithGracefulDegradation отправляет уведомление с graceful degradation
// При недоступности NotifyHub возвращает ErrServiceDegraded: уведомление
// остается сохраненным в БД и не блокирует бизнес-операцию
func (c *Client) PushWithGracefulDegradation(ctx context.Context, req *PushRequest) error {
	c.log.Debug("Pushing notification type=%s for user_id=%d", req.Type, req.UserID)

	if err := c.Push(ctx, req); err != nil {
		// Любая ошибка доставки (недоступность сервиса, timeout, некорректный
		// ответ) не критична: повышаем уровень логирования, чтобы заметить
		// проблему, но наружу отдаем ErrServiceDegraded
		c.log.Error("NotifyHub unavailable, applying graceful degradation for user_id=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, req.UserID, err)
	}

	c.log.Info("Successfully pushed notification type=%s for user_id=%d", req.Type, req.UserID)
	return nil
}
