package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"pixelz/internal/app/client/config"
	"pixelz/internal/domain/event"
	"pixelz/internal/domain/leaderboard"
)

// App — клиентское приложение: локальная очередь событий, HTTP-клиент
// и сервис синхронизации. Токен внешнего провайдера хранится в файле
// и передается явно в каждую операцию, глобального состояния сессии
// нет.
type App struct {
	config      *config.Config
	log         *slog.Logger
	queue       *EventQueue
	httpClient  *httpClient
	syncService *SyncService
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	queue, err := NewEventQueue(cfg.QueuePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации очереди: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		queue:      queue,
		httpClient: httpCl,
	}
	app.syncService = NewSyncService(queue, httpCl, log)

	return app, nil
}

func (a *App) Close() error {
	return a.queue.Close()
}

// Queue возвращает локальную очередь событий.
func (a *App) Queue() *EventQueue {
	return a.queue
}

// RecordEvent валидирует и ставит событие в очередь.
func (a *App) RecordEvent(ev event.Event) error {
	return a.queue.Append(ev)
}

// Sync выполняет одну попытку синхронизации с текущим токеном.
func (a *App) Sync(ctx context.Context) (*SyncResult, error) {
	token, _ := a.GetToken()
	return a.syncService.Sync(ctx, token)
}

// SyncBestEffort — попутная синхронизация после игровой команды.
// Ошибки глотаются по контракту, попытка ограничена дедлайном и
// завершается до возврата.
func (a *App) SyncBestEffort(ctx context.Context) {
	token, _ := a.GetToken()
	a.syncService.SyncBestEffort(ctx, token)
}

// Leaderboard запрашивает таблицу лидеров уровня.
func (a *App) Leaderboard(ctx context.Context, levelID string) (*leaderboard.Response, error) {
	token, _ := a.GetToken()
	return a.httpClient.FetchLeaderboard(ctx, levelID, token)
}

// CheckConnection проверяет доступность сервера.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// SaveToken сохраняет bearer-токен провайдера идентификации.
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	return nil
}

// GetToken читает сохраненный токен; пустая строка — не залогинен.
func (a *App) GetToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ClearToken удаляет сохраненный токен.
func (a *App) ClearToken() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	return nil
}

// IsAuthenticated сообщает, есть ли сохраненный токен.
func (a *App) IsAuthenticated() bool {
	token, err := a.GetToken()
	return err == nil && token != ""
}
