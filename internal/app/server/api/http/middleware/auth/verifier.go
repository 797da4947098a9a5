package auth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Identity — результат проверки токена: стабильный subject id и
// необязательные claims профиля.
type Identity struct {
	Subject  string
	Email    string
	Nickname string
}

// TokenVerifier разрешает bearer-токен в Identity или возвращает
// ошибку. Проверка подписи делегирована внешнему провайдеру
// идентификации через его JWKS.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (Identity, error)
}

// JWKSVerifier проверяет подпись JWT по удаленному набору ключей.
type JWKSVerifier struct {
	keys   keyfunc.Keyfunc
	issuer string
}

// NewJWKSVerifier загружает JWKS по URL. Набор ключей обновляется в
// фоне средствами keyfunc.
func NewJWKSVerifier(ctx context.Context, jwksURL, issuer string) (*JWKSVerifier, error) {
	keys, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("load jwks: %w", err)
	}
	return &JWKSVerifier{keys: keys, issuer: issuer}, nil
}

func (v *JWKSVerifier) Verify(_ context.Context, raw string) (Identity, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, v.keys.Keyfunc, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("token has no subject")
	}

	identity := Identity{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	// Никнейм провайдер кладет в user_metadata.
	if meta, ok := claims["user_metadata"].(map[string]any); ok {
		if nickname, ok := meta["nickname"].(string); ok {
			identity.Nickname = nickname
		}
	}

	return identity, nil
}
