package event

import (
	"fmt"
	"unicode/utf8"

	"pixelz/internal/domain/score"
)

// Validate проверяет форму и границы события перед постановкой в
// очередь на клиенте и повторно на сервере. Правила одинаковые с
// обеих сторон.
func (e Event) Validate() error {
	switch e.Type {
	case TypeLevelCompleted:
		p, err := e.LevelCompleted()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if p.LevelID == "" {
			return fmt.Errorf("%w: пустой levelId", ErrInvalidPayload)
		}
		if !score.ValidBounds(p.Score, p.Moves, p.TimeMs) {
			return fmt.Errorf("%w: score=%d moves=%d timeMs=%d", ErrScoreOutOfBounds, p.Score, p.Moves, p.TimeMs)
		}
		return nil

	case TypeRandomLevelPlayed:
		p, err := e.RandomLevelPlayed()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if p.Seed == "" {
			return fmt.Errorf("%w: пустой seed", ErrInvalidPayload)
		}
		if !score.ValidBounds(p.Score, p.Moves, p.TimeMs) {
			return fmt.Errorf("%w: score=%d moves=%d timeMs=%d", ErrScoreOutOfBounds, p.Score, p.Moves, p.TimeMs)
		}
		return nil

	case TypeSetNickname:
		p, err := e.SetNickname()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		n := utf8.RuneCountInString(p.Nickname)
		if n < 1 || n > score.NicknameMaxLength {
			return fmt.Errorf("%w: длина %d", ErrInvalidNickname, n)
		}
		return nil

	case TypeCreateChallenge:
		p, err := e.CreateChallenge()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if p.Seed == "" {
			return fmt.Errorf("%w: пустой seed", ErrInvalidPayload)
		}
		return nil

	default:
		// Fail closed: неизвестный тег никогда не принимается.
		return fmt.Errorf("%w: %q", ErrUnknownType, e.Type)
	}
}
