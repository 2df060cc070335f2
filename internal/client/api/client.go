package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/trackkeeper/internal/retry"
	"github.com/iudanet/trackkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером.
// Реализует удаленный backend для sync.Manager и Prober для монитора связи.
// Ответы не 2xx возвращаются как *retry.RemoteError с HTTP статусом,
// транспортные ошибки как *retry.RemoteError с кодом транзиентной ошибки.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	retryCfg   retry.Config
	mu         sync.RWMutex
}

// Option настраивает Client
type Option func(*Client)

// WithRetryConfig задает политику повторов для интерактивных вызовов (login, register)
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) {
		c.retryCfg = cfg
	}
}

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		retryCfg: retry.DefaultConfig(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken устанавливает bearer token для последующих запросов
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	resp, err := retry.Do(ctx, c.retryCfg, func(ctx context.Context) (*api.RegisterResponse, error) {
		var resp api.RegisterResponse
		if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	resp, err := retry.Do(ctx, c.retryCfg, func(ctx context.Context) (*api.TokenResponse, error) {
		var resp api.TokenResponse
		if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp)
}

// Insert создает запись в коллекции (upsert по id из payload)
func (c *Client) Insert(ctx context.Context, collection string, payload map[string]any) error {
	return c.doRequest(ctx, http.MethodPost, collectionPath(collection), payload, nil)
}

// UpdateByID обновляет запись коллекции
func (c *Client) UpdateByID(ctx context.Context, collection, id string, payload map[string]any) error {
	return c.doRequest(ctx, http.MethodPatch, recordPath(collection, id), payload, nil)
}

// DeleteByID удаляет запись коллекции
func (c *Client) DeleteByID(ctx context.Context, collection, id string) error {
	return c.doRequest(ctx, http.MethodDelete, recordPath(collection, id), nil, nil)
}

// List возвращает все записи коллекции текущего пользователя
func (c *Client) List(ctx context.Context, collection string) ([]api.RecordResponse, error) {
	var resp api.ListRecordsResponse
	if err := c.doRequest(ctx, http.MethodGet, collectionPath(collection), nil, &resp); err != nil {
		return nil, fmt.Errorf("list %s failed: %w", collection, err)
	}
	return resp.Records, nil
}

func collectionPath(collection string) string {
	return "/api/v1/collections/" + url.PathEscape(collection)
}

func recordPath(collection, id string) string {
	return collectionPath(collection) + "/" + url.PathEscape(id)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return retry.NewTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return retry.NewTransportError(err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return retry.NewStatusError(resp.StatusCode, errorMessage(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorMessage извлекает сообщение из api.ErrorResponse или возвращает тело как есть
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return strings.TrimSpace(string(body))
}
