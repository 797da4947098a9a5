package leaderboard

import (
	"context"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"pixelz/internal/app/server/api/http/middleware/auth"
	"pixelz/internal/domain/leaderboard"
	"pixelz/internal/domain/user"
)

type Handler struct {
	service     leaderboard.Servicer
	verifier    auth.TokenVerifier
	users       user.Repository
	authTimeout time.Duration
	log         *slog.Logger
	middleware  huma.Middlewares
}

func NewHandler(
	service leaderboard.Servicer,
	verifier auth.TokenVerifier,
	users user.Repository,
	authTimeout time.Duration,
	log *slog.Logger,
	middleware huma.Middlewares,
) *Handler {
	return &Handler{
		service:     service,
		verifier:    verifier,
		users:       users,
		authTimeout: authTimeout,
		log:         log,
		middleware:  middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	response, err := h.service.Get(ctx, input.LevelID)
	if err != nil {
		h.log.Error("leaderboard query failed", "level_id", input.LevelID, "error", err)
		return nil, huma.Error500InternalServerError("leaderboard failed")
	}

	// Аннотация необязательна: не успели в бюджет или токен плохой —
	// отдаем таблицу без нее, запрос не валим.
	if id, ok := h.resolveCaller(ctx, input.Authorization); ok {
		response.CurrentUserID = &id
	}

	return &getOutput{Body: *response}, nil
}

// resolveCaller разрешает subject предъявленного токена в id игрока в
// рамках жесткого дедлайна.
func (h *Handler) resolveCaller(ctx context.Context, header string) (string, bool) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, h.authTimeout)
	defer cancel()

	identity, err := h.verifier.Verify(ctx, raw)
	if err != nil {
		h.log.Debug("caller annotation skipped", "error", err)
		return "", false
	}

	appUser, err := h.users.FindByAuthSubject(ctx, identity.Subject)
	if err != nil {
		h.log.Debug("caller annotation skipped", "error", err)
		return "", false
	}

	return appUser.ID, true
}
