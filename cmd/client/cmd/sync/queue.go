package sync

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
	"pixelz/internal/domain/event"
)

var QueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Показать ожидающие отправки события",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		entries, err := app.Queue().PeekEntries()
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("Очередь пуста")
			return nil
		}

		fmt.Printf("Событий в очереди: %d\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("  #%d %s %s\n", entry.Seq, entry.Event.Type, describe(entry.Event))
		}

		return nil
	},
}

func describe(ev event.Event) string {
	switch ev.Type {
	case event.TypeLevelCompleted:
		if p, err := ev.LevelCompleted(); err == nil {
			return fmt.Sprintf("%s: %d очков", p.LevelID, p.Score)
		}
	case event.TypeRandomLevelPlayed:
		if p, err := ev.RandomLevelPlayed(); err == nil {
			return fmt.Sprintf("seed %s: %d очков", p.Seed, p.Score)
		}
	case event.TypeSetNickname:
		if p, err := ev.SetNickname(); err == nil {
			return fmt.Sprintf("-> %q", p.Nickname)
		}
	case event.TypeCreateChallenge:
		if p, err := ev.CreateChallenge(); err == nil {
			return fmt.Sprintf("seed %s", p.Seed)
		}
	}
	return ""
}
