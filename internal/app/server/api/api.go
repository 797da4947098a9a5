//приём пакетов игровых событий от клиентов (offline-очередь);
//валидация и запись результатов в хранилище;
//таблицы лидеров по уровням;
//проверка bearer-токенов внешнего провайдера идентификации.

//GET  /api/v1/health             # Проверка живости (публичный)
//POST /api/sync                  # Пакет событий (auth)
//GET  /api/leaderboards/{levelId} # Таблица лидеров (публичный, токен опционален)

package api

import (
	"time"

	healthAPI "pixelz/internal/app/server/api/http/health"
	leaderboardAPI "pixelz/internal/app/server/api/http/leaderboard"
	"pixelz/internal/app/server/api/http/middleware"
	"pixelz/internal/app/server/api/http/middleware/auth"
	"pixelz/internal/app/server/api/http/middleware/logger"
	syncAPI "pixelz/internal/app/server/api/http/sync"
	"pixelz/internal/app/server/config"
	"pixelz/internal/domain/leaderboard"
	"pixelz/internal/domain/sync"
	"pixelz/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health      *healthAPI.Handler
	Sync        *syncAPI.Handler
	Leaderboard *leaderboardAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(storage *postgres.Storage, verifier auth.TokenVerifier, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Pixelz API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, verifier, cfg, log)
	h.Health.SetupRoutes(API)
	h.Sync.SetupRoutes(API)
	h.Leaderboard.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, verifier auth.TokenVerifier, cfg *config.Config, log *slog.Logger) *Handlers {
	authMW := auth.New(verifier, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	scoreRepo := postgres.NewScoreRepository(storage.Pool(), log)

	syncService := sync.NewService(userRepo, scoreRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	syncHandler := syncAPI.NewHandler(syncService, log, middlewares.GetAllAndClear())

	leaderboardService := leaderboard.NewService(scoreRepo, log)
	middlewares.Add(loggerMW.Middleware())
	leaderboardHandler := leaderboardAPI.NewHandler(
		leaderboardService,
		verifier,
		userRepo,
		time.Duration(cfg.Auth.TimeoutSeconds)*time.Second,
		log,
		middlewares.GetAllAndClear(),
	)

	return &Handlers{
		Health:      healthHandler,
		Sync:        syncHandler,
		Leaderboard: leaderboardHandler,
	}
}
