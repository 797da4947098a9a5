package leaderboard

import (
	"context"
)

type Repository interface {
	// TopByLevel возвращает лучшие результаты уровня, не более limit.
	// Для lowerIsBetter сортировка по времени asc, затем очки desc;
	// иначе очки desc, затем время asc.
	TopByLevel(ctx context.Context, levelID string, lowerIsBetter bool, limit int) ([]Row, error)
}
