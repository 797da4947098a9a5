package sync

import (
	"pixelz/internal/domain/sync"
)

// Request/Response для пакетной синхронизации
type syncInput struct {
	Body sync.SyncRequest
}

type syncOutput struct {
	Body sync.SyncResponse
}
