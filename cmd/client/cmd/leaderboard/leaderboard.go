package leaderboard

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
	"pixelz/internal/domain/level"
)

var LeaderboardCmd = &cobra.Command{
	Use:   "leaderboard <levelId>",
	Short: "Показать таблицу лидеров уровня",
	Long: `Запрашивает топ результатов уровня. Реакционные уровни
(reflex_*) сортируются по времени, остальные — по очкам. С
выполненным входом строка вызывающего подсвечивается.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		levelID := args[0]
		response, err := app.Leaderboard(cmd.Context(), levelID)
		if err != nil {
			return fmt.Errorf("ошибка запроса таблицы лидеров: %w", err)
		}

		if len(response.Entries) == 0 {
			fmt.Printf("По уровню %s результатов пока нет\n", levelID)
			return nil
		}

		metric := "очкам"
		if level.IsReflex(levelID) {
			metric = "времени"
		}
		fmt.Printf("=== %s (топ по %s) ===\n", levelID, metric)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Игрок", "Очки", "Ходы", "Время, мс"})

		for _, entry := range response.Entries {
			name := entry.UserID
			if entry.Nickname != nil && *entry.Nickname != "" {
				name = *entry.Nickname
			}
			if response.CurrentUserID != nil && entry.UserID == *response.CurrentUserID {
				name = color.GreenString("%s (вы)", name)
			}
			t.AppendRow(table.Row{entry.Rank, name, entry.Score, entry.Moves, entry.TimeMs})
		}

		t.Render()
		return nil
	},
}
