package sync

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"pixelz/internal/app/server/api/http/middleware/auth"
	"pixelz/internal/domain/event"
	"pixelz/internal/domain/user"
)

// Servicer — интерфейс сервиса синхронизации.
type Servicer interface {
	// ProcessBatch применяет пакет событий от аутентифицированного
	// игрока и возвращает позиционный результат.
	ProcessBatch(ctx context.Context, req SyncRequest) (*SyncResponse, error)
}

// Service — реализация сервиса синхронизации.
type Service struct {
	users  user.Repository
	scores Repository
	log    *slog.Logger
}

func NewService(users user.Repository, scores Repository, log *slog.Logger) *Service {
	return &Service{
		users:  users,
		scores: scores,
		log:    log.With(slog.String("component", "sync_service")),
	}
}

// ProcessBatch обрабатывает события независимо и строго в порядке
// запроса. Ошибка валидации отдельного события не прерывает пакет:
// индекс записывается в отклонённые, обработка продолжается.
// Ошибка хранилища, напротив, валит весь запрос — частичный результат
// допустим только для ошибок валидации.
func (s *Service) ProcessBatch(ctx context.Context, req SyncRequest) (*SyncResponse, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	appUser, err := s.users.GetOrCreateByAuthSubject(ctx, identity.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve app user: %w", err)
	}

	// Никнейм из токена подставляется один раз, только если ещё не
	// задан. Дальше этим путём он никогда не перезаписывается.
	if identity.Nickname != "" && appUser.Nickname == nil {
		if err := s.users.BackfillNickname(ctx, appUser.ID, identity.Nickname); err != nil {
			s.log.Warn("nickname backfill failed", "user_id", appUser.ID, "error", err)
		}
	}

	var rejected []int
	for i, ev := range req.Events {
		applied, err := s.applyEvent(ctx, appUser.ID, ev)
		if err != nil {
			return nil, fmt.Errorf("apply event %d: %w", i, err)
		}
		if !applied {
			rejected = append(rejected, i)
		}
	}

	resp := &SyncResponse{
		AcceptedCount: len(req.Events) - len(rejected),
		RejectedCount: len(rejected),
	}
	if len(rejected) > 0 {
		resp.RejectedIndices = rejected
	}

	s.log.Debug("batch processed",
		"user_id", appUser.ID,
		"accepted", resp.AcceptedCount,
		"rejected", resp.RejectedCount,
	)

	return resp, nil
}

// applyEvent применяет одно событие. Возвращает false при ошибке
// валидации (событие отклонено, индекс пойдёт в rejectedIndices)
// и error при инфраструктурной ошибке.
func (s *Service) applyEvent(ctx context.Context, userID string, ev event.Event) (bool, error) {
	if err := ev.Validate(); err != nil {
		s.log.Debug("event rejected", "type", ev.Type, "error", err)
		return false, nil
	}

	switch ev.Type {
	case event.TypeLevelCompleted:
		p, err := ev.LevelCompleted()
		if err != nil {
			return false, nil
		}
		rec := &ScoreRecord{
			UserID:  userID,
			LevelID: p.LevelID,
			Score:   p.Score,
			Moves:   p.Moves,
			TimeMs:  p.TimeMs,
		}
		if err := s.scores.InsertScore(ctx, rec); err != nil {
			return false, fmt.Errorf("insert score: %w", err)
		}
		return true, nil

	case event.TypeRandomLevelPlayed:
		p, err := ev.RandomLevelPlayed()
		if err != nil {
			return false, nil
		}
		seed := p.Seed
		rec := &ScoreRecord{
			UserID:  userID,
			LevelID: event.RandomLevelID,
			Seed:    &seed,
			Score:   p.Score,
			Moves:   p.Moves,
			TimeMs:  p.TimeMs,
		}
		if err := s.scores.InsertScore(ctx, rec); err != nil {
			return false, fmt.Errorf("insert score: %w", err)
		}
		return true, nil

	case event.TypeSetNickname:
		p, err := ev.SetNickname()
		if err != nil {
			return false, nil
		}
		if err := s.users.UpdateNickname(ctx, userID, p.Nickname); err != nil {
			return false, fmt.Errorf("update nickname: %w", err)
		}
		return true, nil

	case event.TypeCreateChallenge:
		// Принимается без побочных эффектов: фича зарезервирована.
		return true, nil

	default:
		return false, nil
	}
}
