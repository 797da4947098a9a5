package leaderboard

import (
	"strings"
	"time"
)

// Row — сырая строка выборки из хранилища, без ранга.
type Row struct {
	UserID    string
	Nickname  *string
	Score     int64
	Moves     int64
	TimeMs    int64
	CreatedAt time.Time
}

// Entry — строка таблицы лидеров с присвоенным рангом.
type Entry struct {
	Rank      int        `json:"rank"`
	UserID    string     `json:"userId"`
	Nickname  *string    `json:"nickname"`
	Score     int64      `json:"score"`
	Moves     int64      `json:"moves"`
	TimeMs    int64      `json:"timeMs"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Response — таблица лидеров уровня. CurrentUserID заполняется только
// если вызывающий предъявил валидный токен и subject удалось
// разрешить в рамках бюджета времени.
type Response struct {
	LevelID       string  `json:"levelId"`
	Entries       []Entry `json:"entries"`
	CurrentUserID *string `json:"currentUserId,omitempty"`
}

// LowerIsBetter сообщает, сортируется ли уровень по времени
// (реакционные уровни) или по очкам.
func LowerIsBetter(levelID string) bool {
	return strings.HasPrefix(levelID, "reflex_")
}
