package leaderboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "leaderboard-get",
		Method:      http.MethodGet,
		Path:        "/api/leaderboards/{levelId}",
		Summary:     "Таблица лидеров уровня",
		Description: "Возвращает топ результатов уровня; с токеном дополнительно помечает строку вызывающего",
		Tags:        []string{"leaderboard"},
		Middlewares: h.middleware,
	}
}
