package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd — родительская команда аутентификации.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление входом в систему",
	Long: `Вход выполняется токеном внешнего провайдера идентификации.
Pixelz не хранит пароли: получите токен у провайдера и передайте его
команде login.`,
}
