// http клиент бэкенда поиска вакансий
package search_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"search_ui/configs"
	"search_ui/internal/search_client/dto"
	"search_ui/pkg/logging"
	"strings"
)

// SearchClient - один POST на {base}/search с телом {"query": ...}
type SearchClient struct {
	searchURL    string
	httpClient   *http.Client
	maxBodyBytes int64
	logger       *logging.Logger
}

// конструктор клиента; httpClient == nil - создаём клиента по конфигу
func NewSearchClient(cfg *configs.SearchClientConfig, httpClient *http.Client, logger *logging.Logger) (*SearchClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("search client config is nil")
	}

	searchURL, err := buildSearchURL(cfg.BaseURL, cfg.SearchPath)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = createHTTPClient(cfg)
	}

	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = configs.DefaultSearchClientConfig().MaxBodyBytes
	}

	return &SearchClient{
		searchURL:    searchURL,
		httpClient:   httpClient,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With("component", "search_client"),
	}, nil
}

// функция, которая создаёт новый клиент с параметрами
// Timeout == 0 означает, что запрос не ограничен по времени (только контекстом)
func createHTTPClient(cfg *configs.SearchClientConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: cfg.MaxIdleConns,
			IdleConnTimeout:     cfg.IdleConnTimeout,
		},
	}
}

func buildSearchURL(baseURL, searchPath string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse search backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("search backend url must be absolute, got %q", baseURL)
	}

	u.Path = u.Path + "/" + strings.TrimPrefix(searchPath, "/")
	return u.String(), nil
}

// адрес эндпоинта поиска
func (c *SearchClient) URL() string {
	return c.searchURL
}

// Search отправляет запрос поиска и возвращает разобранный ответ бэкенда.
// ошибки: ErrTransport (сеть), *ServerError (не-2xx), ErrMalformedResponse (2xx, но тело не JSON ответа),
// ErrResponseTooLarge (2xx, тело больше MaxBodyBytes)
func (c *SearchClient) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	payload, err := json.Marshal(dto.SearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Info("sending search request", "query", query, "url", c.searchURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("search request failed", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer c.drainAndClose(resp)

	// читаем на байт больше лимита, чтобы отличить обрезанное тело от тела ровно в лимит
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		c.logger.Error("read search response failed", "query", query, "status", resp.StatusCode, "err", err)
		return nil, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	c.logger.Info("received search response", "query", query, "status", resp.StatusCode, "body", string(body[:min(int64(len(body)), c.maxBodyBytes)]))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body),
		}
	}

	if int64(len(body)) > c.maxBodyBytes {
		c.logger.Warn("search response exceeds size limit", "query", query, "limit_bytes", c.maxBodyBytes)
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrResponseTooLarge, c.maxBodyBytes)
	}

	var result dto.SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Warn("undecodable search response", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &result, nil
}

// попытка достать поле error из тела ответа с ошибкой; любое другое тело - пустое сообщение
func extractErrorMessage(body []byte) string {
	var errBody dto.ErrorBody
	if err := json.Unmarshal(body, &errBody); err != nil {
		return ""
	}
	return errBody.Error
}

// метод для дренирования и закрытия тела ответа, освобождения ресурсов.
func (c *SearchClient) drainAndClose(resp *http.Response) {
	const maxBodySlurp = 1 << 20 // 1MB
	_, _ = io.CopyN(io.Discard, resp.Body, maxBodySlurp)
	_ = resp.Body.Close()
}
