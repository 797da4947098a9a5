package user

import "time"

// AppUser — серверная учётная запись игрока. Создаётся лениво при
// первой синхронизации и привязывается к стабильному subject id
// внешнего провайдера аутентификации.
type AppUser struct {
	ID          string
	AuthSubject string
	Nickname    *string
	CreatedAt   time.Time
}
