package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние входа и очереди",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if app.IsAuthenticated() {
			color.Green("Вход: выполнен")
		} else {
			color.Yellow("Вход: не выполнен")
		}

		count, err := app.Queue().Count()
		if err != nil {
			return err
		}
		fmt.Printf("Событий в очереди: %d\n", count)

		fmt.Print("Сервер: ")
		if err := app.CheckConnection(cmd.Context()); err != nil {
			color.Red("недоступен (%v)", err)
		} else {
			color.Green("доступен")
		}

		return nil
	},
}
