package sync

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"pixelz/internal/domain/sync"
)

type Handler struct {
	service    sync.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sync.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.syncOp(), h.sync)
}

// sync применяет пакет событий. Ошибки валидации отдельных событий
// отражаются в теле ответа по индексам; инфраструктурная ошибка валит
// весь запрос пятисоткой — частичный результат наружу не отдается.
func (h *Handler) sync(ctx context.Context, input *syncInput) (*syncOutput, error) {
	response, err := h.service.ProcessBatch(ctx, input.Body)
	if err != nil {
		if errors.Is(err, sync.ErrNotAuthenticated) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		h.log.Error("batch processing failed", "error", err)
		return nil, huma.Error500InternalServerError("sync failed")
	}

	return &syncOutput{Body: *response}, nil
}
