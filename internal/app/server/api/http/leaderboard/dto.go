package leaderboard

import (
	"pixelz/internal/domain/leaderboard"
)

// Request/Response для таблицы лидеров
type getInput struct {
	LevelID string `path:"levelId" doc:"Идентификатор уровня"`
	// Токен необязателен: используется только для аннотации
	// currentUserId в ответе.
	Authorization string `header:"Authorization" required:"false"`
}

type getOutput struct {
	Body leaderboard.Response
}
