package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
	"pixelz/internal/domain/event"
)

var NicknameCmd = &cobra.Command{
	Use:   "nickname <имя>",
	Short: "Сменить отображаемое имя",
	Long: `Ставит событие смены никнейма в очередь. Имя от 1 до 32
символов; применится на сервере при ближайшей синхронизации.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.RecordEvent(event.NewSetNickname(args[0])); err != nil {
			return err
		}

		fmt.Printf("✅ Никнейм %q поставлен в очередь\n", args[0])
		app.SyncBestEffort(cmd.Context())
		return nil
	},
}
