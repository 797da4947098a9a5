package event

import (
	"encoding/json"
	"time"
)

// Type — дискриминатор события. Неизвестный тип всегда отклоняется,
// никогда не приводится к известному.
type Type string

const (
	TypeLevelCompleted    Type = "LEVEL_COMPLETED"
	TypeRandomLevelPlayed Type = "RANDOM_LEVEL_PLAYED"
	TypeSetNickname       Type = "SET_NICKNAME"
	TypeCreateChallenge   Type = "CREATE_CHALLENGE"
)

// RandomLevelID — сентинел, под которым сервер хранит результаты
// случайных уровней.
const RandomLevelID = "random"

// Event — неизменяемая запись игровой активности, ожидающая
// подтверждения сервером. Payload хранится сырым и декодируется
// по тегу Type.
type Event struct {
	// Без enum-тега: неизвестный тип должен дойти до Validate и
	// получить позиционный отказ, а не завалить весь пакет на
	// валидации тела запроса.
	Type            Type            `json:"type"`
	Payload         json.RawMessage `json:"payload"`
	ClientTimestamp *int64          `json:"clientTimestamp,omitempty"`
}

// LevelCompletedPayload — пройден именованный уровень.
type LevelCompletedPayload struct {
	LevelID string `json:"levelId"`
	Score   int64  `json:"score"`
	Moves   int64  `json:"moves"`
	TimeMs  int64  `json:"timeMs"`
}

// RandomLevelPlayedPayload — сыгран случайный уровень по сиду.
type RandomLevelPlayedPayload struct {
	Seed   string `json:"seed"`
	Score  int64  `json:"score"`
	Moves  int64  `json:"moves"`
	TimeMs int64  `json:"timeMs"`
}

// SetNicknamePayload — смена никнейма игрока.
type SetNicknamePayload struct {
	Nickname string `json:"nickname"`
}

// CreateChallengePayload — вызов другому игроку (зарезервировано).
type CreateChallengePayload struct {
	Seed       string  `json:"seed"`
	OpponentID *string `json:"opponentId,omitempty"`
}

func now() *int64 {
	ts := time.Now().UnixMilli()
	return &ts
}

func mustPayload(p any) json.RawMessage {
	raw, err := json.Marshal(p)
	if err != nil {
		// Структуры payload сериализуются всегда.
		panic(err)
	}
	return raw
}

// NewLevelCompleted собирает событие прохождения уровня с текущей
// меткой клиентского времени.
func NewLevelCompleted(levelID string, score, moves, timeMs int64) Event {
	return Event{
		Type: TypeLevelCompleted,
		Payload: mustPayload(LevelCompletedPayload{
			LevelID: levelID,
			Score:   score,
			Moves:   moves,
			TimeMs:  timeMs,
		}),
		ClientTimestamp: now(),
	}
}

// NewRandomLevelPlayed собирает событие игры на случайном уровне.
func NewRandomLevelPlayed(seed string, score, moves, timeMs int64) Event {
	return Event{
		Type: TypeRandomLevelPlayed,
		Payload: mustPayload(RandomLevelPlayedPayload{
			Seed:   seed,
			Score:  score,
			Moves:  moves,
			TimeMs: timeMs,
		}),
		ClientTimestamp: now(),
	}
}

// NewSetNickname собирает событие смены никнейма.
func NewSetNickname(nickname string) Event {
	return Event{
		Type:            TypeSetNickname,
		Payload:         mustPayload(SetNicknamePayload{Nickname: nickname}),
		ClientTimestamp: now(),
	}
}

// NewCreateChallenge собирает событие вызова.
func NewCreateChallenge(seed string, opponentID *string) Event {
	return Event{
		Type: TypeCreateChallenge,
		Payload: mustPayload(CreateChallengePayload{
			Seed:       seed,
			OpponentID: opponentID,
		}),
		ClientTimestamp: now(),
	}
}

// LevelCompleted декодирует payload как LevelCompletedPayload.
func (e Event) LevelCompleted() (LevelCompletedPayload, error) {
	var p LevelCompletedPayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}

// RandomLevelPlayed декодирует payload как RandomLevelPlayedPayload.
func (e Event) RandomLevelPlayed() (RandomLevelPlayedPayload, error) {
	var p RandomLevelPlayedPayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}

// SetNickname декодирует payload как SetNicknamePayload.
func (e Event) SetNickname() (SetNicknamePayload, error) {
	var p SetNicknamePayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}

// CreateChallenge декодирует payload как CreateChallengePayload.
func (e Event) CreateChallenge() (CreateChallengePayload, error) {
	var p CreateChallengePayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}
