package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
	"pixelz/internal/domain/event"
)

var opponentID string

var ChallengeCmd = &cobra.Command{
	Use:   "challenge <seed>",
	Short: "Бросить вызов на случайном уровне",
	Long: `Создает вызов по сиду случайного уровня. Сервер принимает
событие и резервирует его под будущую фичу соревнований.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		var opponent *string
		if opponentID != "" {
			opponent = &opponentID
		}

		if err := app.RecordEvent(event.NewCreateChallenge(args[0], opponent)); err != nil {
			return err
		}

		fmt.Printf("✅ Вызов по сиду %s поставлен в очередь\n", args[0])
		app.SyncBestEffort(cmd.Context())
		return nil
	},
}

func init() {
	ChallengeCmd.Flags().StringVar(&opponentID, "opponent", "", "id соперника")
}
