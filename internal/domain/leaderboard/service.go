package leaderboard

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"pixelz/internal/domain/score"
)

// Servicer — интерфейс сервиса таблицы лидеров.
type Servicer interface {
	Get(ctx context.Context, levelID string) (*Response, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "leaderboard_service")),
	}
}

// Get собирает таблицу лидеров уровня. Ранг присваивается по порядку
// выборки, начиная с 1.
func (s *Service) Get(ctx context.Context, levelID string) (*Response, error) {
	rows, err := s.repo.TopByLevel(ctx, levelID, LowerIsBetter(levelID), score.LeaderboardTopN)
	if err != nil {
		return nil, fmt.Errorf("top by level: %w", err)
	}

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		createdAt := row.CreatedAt
		entries[i] = Entry{
			Rank:      i + 1,
			UserID:    row.UserID,
			Nickname:  row.Nickname,
			Score:     row.Score,
			Moves:     row.Moves,
			TimeMs:    row.TimeMs,
			CreatedAt: &createdAt,
		}
	}

	return &Response{
		LevelID: levelID,
		Entries: entries,
	}, nil
}
