package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"pixelz/internal/app/client/config"
	"pixelz/internal/domain/event"
	"pixelz/internal/domain/leaderboard"
	"pixelz/internal/domain/sync"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "Pixelz-Client/1.0",
	}, nil
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

// SyncEvents отправляет пакет событий одним запросом, сохраняя порядок
// очереди. Любая сетевая ошибка, не-2xx статус или нечитаемое тело
// ответа — ошибка без последствий для очереди: тот же пакет можно
// повторить целиком.
func (h *httpClient) SyncEvents(ctx context.Context, token string, events []event.Event) (*sync.SyncResponse, error) {
	body, err := json.Marshal(sync.SyncRequest{Events: events})
	if err != nil {
		return nil, fmt.Errorf("ошибка маршалинга пакета: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/sync", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Authorization", "Bearer "+token)

	h.log.Debug("Отправка пакета", "events", len(events))

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var result sync.SyncResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	if result.AcceptedCount+result.RejectedCount != len(events) {
		return nil, fmt.Errorf("некорректный ответ сервера: %d+%d != %d",
			result.AcceptedCount, result.RejectedCount, len(events))
	}

	return &result, nil
}

// FetchLeaderboard запрашивает таблицу лидеров уровня. Токен
// необязателен: с ним сервер пометит строку вызывающего.
func (h *httpClient) FetchLeaderboard(ctx context.Context, levelID, token string) (*leaderboard.Response, error) {
	path := h.baseURL + "/api/leaderboards/" + url.PathEscape(levelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	var result leaderboard.Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа: %w", err)
	}

	return &result, nil
}
