package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"pixelz/internal/domain/user"
)

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log,
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// GetOrCreateByAuthSubject — атомарный upsert по subject id.
// DO UPDATE нужен, чтобы RETURNING отработал и для существующей
// строки; гонка первых синхронизаций с двух устройств дает одну
// запись.
func (r *UserRepository) GetOrCreateByAuthSubject(ctx context.Context, authSubject string) (user.AppUser, error) {
	var u user.AppUser
	err := r.pool.QueryRow(ctx,
		`INSERT INTO app_users (auth_subject) VALUES ($1)
		 ON CONFLICT (auth_subject) DO UPDATE SET auth_subject = EXCLUDED.auth_subject
		 RETURNING id, auth_subject, nickname, created_at`,
		authSubject).Scan(&u.ID, &u.AuthSubject, &u.Nickname, &u.CreatedAt)
	if err != nil {
		return u, fmt.Errorf("upsert app user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByAuthSubject(ctx context.Context, authSubject string) (user.AppUser, error) {
	var u user.AppUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, auth_subject, nickname, created_at FROM app_users WHERE auth_subject = $1`,
		authSubject).Scan(&u.ID, &u.AuthSubject, &u.Nickname, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrNotFound
	}
	if err != nil {
		return u, fmt.Errorf("find app user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateNickname(ctx context.Context, userID, nickname string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE app_users SET nickname = $2 WHERE id = $1`,
		userID, nickname)
	if err != nil {
		return fmt.Errorf("update nickname: %w", err)
	}
	return nil
}

// BackfillNickname выставляет никнейм только если он еще NULL.
func (r *UserRepository) BackfillNickname(ctx context.Context, userID, nickname string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE app_users SET nickname = $2 WHERE id = $1 AND nickname IS NULL`,
		userID, nickname)
	if err != nil {
		return fmt.Errorf("backfill nickname: %w", err)
	}
	return nil
}
