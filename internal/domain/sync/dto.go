package sync

import (
	"pixelz/internal/domain/event"
)

// SyncRequest — пакет событий из локальной очереди клиента.
// Порядок событий в пакете строго равен порядку очереди: сервер
// отвечает позиционно, по индексам запроса.
type SyncRequest struct {
	Events []event.Event `json:"events"`
}

// SyncResponse — позиционный результат обработки пакета.
// Инвариант: AcceptedCount + RejectedCount == len(Events);
// индексы, не попавшие в RejectedIndices, приняты.
type SyncResponse struct {
	AcceptedCount   int   `json:"acceptedCount"`
	RejectedCount   int   `json:"rejectedCount"`
	RejectedIndices []int `json:"rejectedIndices,omitempty"`
}
