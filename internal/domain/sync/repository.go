package sync

import (
	"context"
)

// Repository — хранилище результатов.
type Repository interface {
	// InsertScore добавляет одну запись результата.
	InsertScore(ctx context.Context, record *ScoreRecord) error
}
