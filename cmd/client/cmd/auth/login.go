package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
)

var tokenFlag string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Сохранить токен провайдера идентификации",
	Long: `Сохраняет bearer-токен для синхронизации. Токен выдает
внешний провайдер идентификации; сервер Pixelz только проверяет его
подпись.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if tokenFlag == "" {
			return fmt.Errorf("укажите токен: pixelz auth login --token <JWT>")
		}

		if err := app.SaveToken(tokenFlag); err != nil {
			return err
		}

		fmt.Println("✅ Токен сохранен")

		// Сразу пробуем дослать накопившуюся очередь.
		app.SyncBestEffort(cmd.Context())
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVar(&tokenFlag, "token", "", "bearer-токен провайдера идентификации")
}
