package client

import (
	"context"
	"errors"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"
)

var (
	// ErrNotSignedIn — нет токена; очередь не тронута.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrNothingToSync — очередь пуста.
	ErrNothingToSync = errors.New("nothing to sync")
	// ErrSyncInProgress — попытка запустить вторую синхронизацию,
	// пока первая не завершилась.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrUnauthorized — сервер отверг токен; очередь не тронута.
	ErrUnauthorized = errors.New("unauthorized")
)

// SyncResult — агрегированный итог одной попытки синхронизации.
// Причины отказов пользователю не показываются, только счетчики.
type SyncResult struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// SyncService управляет отправкой локальной очереди на сервер.
// Одновременно выполняется не больше одной попытки.
type SyncService struct {
	queue *EventQueue
	api   *httpClient
	log   *slog.Logger

	mu        gosync.Mutex
	isSyncing bool
}

func NewSyncService(queue *EventQueue, api *httpClient, log *slog.Logger) *SyncService {
	return &SyncService{
		queue: queue,
		api:   api,
		log:   log.With(slog.String("component", "sync_service")),
	}
}

// Sync выполняет одну попытку синхронизации:
//  1. без токена — ErrNotSignedIn, очередь не трогается;
//  2. пустая очередь — ErrNothingToSync;
//  3. пакет уходит одним запросом, строго в порядке очереди;
//  4. по корректному ответу из очереди удаляется ВЕСЬ отправленный
//     пакет, включая отклоненные события: отказ детерминирован
//     (валидация), повторная отправка даст тот же отказ;
//  5. наружу — счетчики принятых и отклоненных.
//
// Сетевая ошибка, не-2xx или нечитаемый ответ оставляют очередь
// нетронутой: тот же пакет будет повторен позже целиком.
func (s *SyncService) Sync(ctx context.Context, token string) (*SyncResult, error) {
	if token == "" {
		return nil, ErrNotSignedIn
	}

	if !s.tryBegin() {
		return nil, ErrSyncInProgress
	}
	defer s.end()

	events, err := s.queue.PeekAll()
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNothingToSync
	}

	resp, err := s.api.SyncEvents(ctx, token, events)
	if err != nil {
		s.log.Debug("синхронизация не удалась, очередь сохранена", "error", err)
		return nil, err
	}

	// Сервер вынес решение по каждому событию пакета; держать в
	// очереди больше нечего.
	if err := s.queue.RemoveFirstN(resp.AcceptedCount + resp.RejectedCount); err != nil {
		return nil, err
	}

	if resp.RejectedCount > 0 {
		s.log.Warn("сервер отклонил события",
			"rejected", resp.RejectedCount,
			"indices", resp.RejectedIndices,
		)
	}

	return &SyncResult{
		Accepted: resp.AcceptedCount,
		Rejected: resp.RejectedCount,
	}, nil
}

// bestEffortTimeout — потолок на попытку синхронизации после игровой
// команды, чтобы CLI не зависал на плохой сети.
const bestEffortTimeout = 15 * time.Second

// SyncBestEffort выполняет одну попытку синхронизации с жестким
// дедлайном и глотает любой исход: ошибки по контракту не всплывают
// к вызывающему. Попытка завершается до возврата. Процесс CLI живет
// только до конца команды, поэтому отдельная горутина здесь не успела
// бы отработать; очереди в любом случае ничего не грозит — решение
// сервера применяется к ней атомарно в Sync.
func (s *SyncService) SyncBestEffort(ctx context.Context, token string) {
	ctx, cancel := context.WithTimeout(ctx, bestEffortTimeout)
	defer cancel()

	result, err := s.Sync(ctx, token)
	switch {
	case errors.Is(err, ErrNotSignedIn), errors.Is(err, ErrNothingToSync), errors.Is(err, ErrSyncInProgress):
		// Штатные исходы, молчим.
	case err != nil:
		s.log.Debug("попутная синхронизация не удалась", "error", err)
	default:
		s.log.Debug("попутная синхронизация завершена",
			"accepted", result.Accepted,
			"rejected", result.Rejected,
		)
	}
}

func (s *SyncService) tryBegin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isSyncing {
		return false
	}
	s.isSyncing = true
	return true
}

func (s *SyncService) end() {
	s.mu.Lock()
	s.isSyncing = false
	s.mu.Unlock()
}
