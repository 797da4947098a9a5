package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/exp/slog"

	"github.com/danielgtaylor/huma/v2"
)

type Auth struct {
	verifier TokenVerifier
	log      *slog.Logger
}

func New(verifier TokenVerifier, log *slog.Logger) *Auth {
	return &Auth{
		verifier: verifier,
		log:      log.With(slog.String("component", "auth middleware")),
	}
}

type contextKey string

const identityKey contextKey = "identity"

// Middleware возвращает middleware для Huma: отклоняет запрос без
// валидного bearer-токена целиком, без частичной обработки.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ctx.Header("Authorization")

		if len(token) < 7 || token[:7] != "Bearer " {
			a.log.Debug("missing bearer token")
			a.unauthorized(ctx)
			return
		}

		identity, err := a.verifier.Verify(ctx.Context(), token[7:])
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			a.unauthorized(ctx)
			return
		}

		newCtx := WithIdentity(ctx.Context(), identity)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	w := ctx.BodyWriter()
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("encode 401 body", "error", err)
	}
}

// WithIdentity кладет Identity в контекст запроса.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity достает Identity, установленный middleware.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
