package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Удалить сохраненный токен",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.ClearToken(); err != nil {
			return err
		}

		fmt.Println("✅ Выход выполнен. Очередь событий сохранена и уйдет после следующего входа.")
		return nil
	},
}
