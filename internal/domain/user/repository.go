package user

import (
	"context"
)

type Repository interface {
	// GetOrCreateByAuthSubject возвращает пользователя по subject id,
	// создавая запись при первом обращении. Реализация обязана быть
	// атомарной (upsert), чтобы параллельные первые синхронизации с
	// нескольких устройств не плодили дубликаты.
	GetOrCreateByAuthSubject(ctx context.Context, authSubject string) (AppUser, error)

	// FindByAuthSubject ищет пользователя без создания.
	FindByAuthSubject(ctx context.Context, authSubject string) (AppUser, error)

	// UpdateNickname безусловно обновляет никнейм.
	UpdateNickname(ctx context.Context, userID, nickname string) error

	// BackfillNickname выставляет никнейм только если он ещё не задан.
	BackfillNickname(ctx context.Context, userID, nickname string) error
}
