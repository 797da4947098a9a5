package score

// Константы игры. Клиент и сервер обязаны использовать один и тот же
// MaxScore: клиент считает очки для мгновенного отображения, сервер
// проверяет границы при приёме событий.
const (
	MaxScore          = 1_000_000
	NicknameMaxLength = 32
	LeaderboardTopN   = 100

	// Базовые очки до штрафов.
	Base = 10_000
	// Очки, теряемые за каждый ход.
	MovePenalty = 50
	// Сколько миллисекунд стоят одно очко.
	TimePenaltyMs = 20
)

// Compute детерминированно считает очки по ходам и времени.
// Результат всегда в диапазоне [0, MaxScore].
func Compute(moves, timeMs int64) int64 {
	raw := int64(Base) - moves*MovePenalty - timeMs/TimePenaltyMs
	if raw < 0 {
		return 0
	}
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}

// ValidBounds проверяет, что присланные клиентом значения попадают в
// допустимый диапазон. Выход за границы возможен только у испорченного
// или взломанного клиента.
func ValidBounds(score, moves, timeMs int64) bool {
	if score < 0 || score > MaxScore {
		return false
	}
	if moves < 0 || timeMs < 0 {
		return false
	}
	return true
}
