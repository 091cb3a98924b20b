package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/shopsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного хранилища (RemoteStore):
// per-domain чтение и запись данных пользователя плюс point read
// текущей цены товара. Пользователь определяется access token-ом.
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// GetSalt получает public_salt пользователя
	GetSalt(ctx context.Context, username string) (*api.SaltResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// ReadCart читает корзину пользователя
	ReadCart(ctx context.Context, token string) ([]api.CartItem, error)

	// UpsertCart записывает корзину пользователя целиком
	UpsertCart(ctx context.Context, token string, items []api.CartItem) error

	// ReadPreferences читает preferences пользователя
	ReadPreferences(ctx context.Context, token string) (map[string]any, error)

	// UpsertPreferences записывает preferences пользователя
	UpsertPreferences(ctx context.Context, token string, prefs map[string]any) error

	// ReadFavorites читает wishlist пользователя
	ReadFavorites(ctx context.Context, token string) ([]api.FavoriteItem, error)

	// UpsertFavorites записывает wishlist пользователя целиком
	UpsertFavorites(ctx context.Context, token string, items []api.FavoriteItem) error

	// ReadPriceAlerts читает price alerts пользователя
	ReadPriceAlerts(ctx context.Context, token string) ([]api.PriceAlert, error)

	// UpsertPriceAlerts записывает price alerts пользователя целиком
	UpsertPriceAlerts(ctx context.Context, token string, alerts []api.PriceAlert) error

	// UpdatePriceAlert точечно обновляет состояние одного alert
	// (используется evaluator-ом для фиксации срабатывания)
	UpdatePriceAlert(ctx context.Context, token, alertID string, req api.UpdatePriceAlertRequest) error

	// ReadProductPrice читает текущую цену товара (point read)
	ReadProductPrice(ctx context.Context, token, productID string) (*api.ProductPriceResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
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
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := fmt.Sprintf("/api/v1/auth/salt/%s", url.PathEscape(username))
	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ReadCart читает корзину пользователя
func (c *Client) ReadCart(ctx context.Context, token string) ([]api.CartItem, error) {
	var resp api.CartResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/cart", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("read cart failed: %w", err)
	}
	return resp.Items, nil
}

// UpsertCart записывает корзину пользователя целиком
func (c *Client) UpsertCart(ctx context.Context, token string, items []api.CartItem) error {
	req := api.UpsertCartRequest{Items: items}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/cart", token, req, nil); err != nil {
		return fmt.Errorf("upsert cart failed: %w", err)
	}
	return nil
}

// ReadPreferences читает preferences пользователя
func (c *Client) ReadPreferences(ctx context.Context, token string) (map[string]any, error) {
	var resp api.PreferencesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/preferences", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("read preferences failed: %w", err)
	}
	return resp.Preferences, nil
}

// UpsertPreferences записывает preferences пользователя
func (c *Client) UpsertPreferences(ctx context.Context, token string, prefs map[string]any) error {
	req := api.UpsertPreferencesRequest{Preferences: prefs}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/preferences", token, req, nil); err != nil {
		return fmt.Errorf("upsert preferences failed: %w", err)
	}
	return nil
}

// ReadFavorites читает wishlist пользователя
func (c *Client) ReadFavorites(ctx context.Context, token string) ([]api.FavoriteItem, error) {
	var resp api.FavoritesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/favorites", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("read favorites failed: %w", err)
	}
	return resp.Items, nil
}

// UpsertFavorites записывает wishlist пользователя целиком
func (c *Client) UpsertFavorites(ctx context.Context, token string, items []api.FavoriteItem) error {
	req := api.UpsertFavoritesRequest{Items: items}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/favorites", token, req, nil); err != nil {
		return fmt.Errorf("upsert favorites failed: %w", err)
	}
	return nil
}

// ReadPriceAlerts читает price alerts пользователя
func (c *Client) ReadPriceAlerts(ctx context.Context, token string) ([]api.PriceAlert, error) {
	var resp api.PriceAlertsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/alerts", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("read price alerts failed: %w", err)
	}
	return resp.Alerts, nil
}

// UpsertPriceAlerts записывает price alerts пользователя целиком
func (c *Client) UpsertPriceAlerts(ctx context.Context, token string, alerts []api.PriceAlert) error {
	req := api.UpsertPriceAlertsRequest{Alerts: alerts}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/alerts", token, req, nil); err != nil {
		return fmt.Errorf("upsert price alerts failed: %w", err)
	}
	return nil
}

// UpdatePriceAlert точечно обновляет состояние одного alert
func (c *Client) UpdatePriceAlert(ctx context.Context, token, alertID string, req api.UpdatePriceAlertRequest) error {
	path := fmt.Sprintf("/api/v1/alerts/%s", url.PathEscape(alertID))
	if err := c.doRequest(ctx, http.MethodPatch, path, token, req, nil); err != nil {
		return fmt.Errorf("update price alert failed: %w", err)
	}
	return nil
}

// ReadProductPrice читает текущую цену товара
func (c *Client) ReadProductPrice(ctx context.Context, token, productID string) (*api.ProductPriceResponse, error) {
	var resp api.ProductPriceResponse
	path := fmt.Sprintf("/api/v1/products/%s/price", url.PathEscape(productID))
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("read product price failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
