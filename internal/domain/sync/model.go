package sync

import "time"

// ScoreRecord — одна строка результата на сервере. Записи только
// добавляются, никогда не обновляются и не удаляются этим кодом.
type ScoreRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	LevelID   string    `json:"level_id"`
	Seed      *string   `json:"seed,omitempty"`
	Score     int64     `json:"score"`
	Moves     int64     `json:"moves"`
	TimeMs    int64     `json:"time_ms"`
	CreatedAt time.Time `json:"created_at"`
}
