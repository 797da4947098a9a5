package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"pixelz/internal/domain/leaderboard"
	"pixelz/internal/domain/sync"
)

func NewScoreRepository(pool *pgxpool.Pool, log *slog.Logger) *ScoreRepository {
	return &ScoreRepository{
		pool: pool,
		log:  log,
	}
}

type ScoreRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// InsertScore добавляет строку результата. Таблица append-only:
// обновлений и удалений здесь нет.
func (r *ScoreRepository) InsertScore(ctx context.Context, record *sync.ScoreRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO scores (id, user_id, level_id, seed, score, moves, time_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.UserID, record.LevelID, record.Seed,
		record.Score, record.Moves, record.TimeMs, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// TopByLevel выбирает топ результатов уровня.
func (r *ScoreRepository) TopByLevel(ctx context.Context, levelID string, lowerIsBetter bool, limit int) ([]leaderboard.Row, error) {
	order := `s.score DESC, s.time_ms ASC`
	if lowerIsBetter {
		order = `s.time_ms ASC, s.score DESC`
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.nickname, s.score, s.moves, s.time_ms, s.created_at
		FROM scores s
		JOIN app_users u ON u.id = s.user_id
		WHERE s.level_id = $1
		ORDER BY %s
		LIMIT $2`, order)

	rows, err := r.pool.Query(ctx, query, levelID, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var result []leaderboard.Row
	for rows.Next() {
		var row leaderboard.Row
		if err := rows.Scan(&row.UserID, &row.Nickname, &row.Score, &row.Moves, &row.TimeMs, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard rows: %w", err)
	}

	return result, nil
}
