package play

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
	"pixelz/internal/domain/event"
	"pixelz/internal/domain/level"
	"pixelz/internal/domain/score"
)

var (
	randomSeed string
	moves      int64
	timeMs     int64
	noSync     bool
)

var PlayCmd = &cobra.Command{
	Use:   "play [levelId]",
	Short: "Записать результат сыгранного уровня",
	Long: `Записывает результат завершенного уровня в локальную очередь.
Очки считаются детерминированно из ходов и времени — сервер проверяет
только границы, поэтому клиент и сервер всегда согласны.

Результат долговечно сохранен сразу после выполнения команды; на
сервер он уйдет при ближайшей синхронизации.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if moves < 0 || timeMs < 0 {
			return fmt.Errorf("ходы и время не могут быть отрицательными")
		}

		points := score.Compute(moves, timeMs)

		var ev event.Event
		switch {
		case randomSeed != "":
			if len(args) > 0 {
				return fmt.Errorf("уровень и --seed одновременно не задаются")
			}
			ev = event.NewRandomLevelPlayed(randomSeed, points, moves, timeMs)
			fmt.Printf("Случайный уровень (seed %s, пар %d): %d очков\n",
				randomSeed, level.RandomParFromSeed(randomSeed), points)
		case len(args) == 1:
			levelID := args[0]
			if !level.IsKnown(levelID) {
				return fmt.Errorf("неизвестный уровень: %s", levelID)
			}
			ev = event.NewLevelCompleted(levelID, points, moves, timeMs)
			fmt.Printf("Уровень %s: %d очков (%d ходов, %d мс)\n", levelID, points, moves, timeMs)
		default:
			return fmt.Errorf("укажите уровень или --seed для случайного")
		}

		if err := app.RecordEvent(ev); err != nil {
			return err
		}

		count, err := app.Queue().Count()
		if err != nil {
			return err
		}
		fmt.Printf("✅ Результат сохранен. В очереди: %d\n", count)

		// Попутная синхронизация после уровня: ошибки глотаются,
		// очередь в любом случае цела.
		if !noSync {
			app.SyncBestEffort(cmd.Context())
		}

		return nil
	},
}

func init() {
	PlayCmd.Flags().StringVar(&randomSeed, "seed", "", "сид случайного уровня")
	PlayCmd.Flags().Int64Var(&moves, "moves", 0, "число сделанных ходов")
	PlayCmd.Flags().Int64Var(&timeMs, "time", 0, "затраченное время, мс")
	PlayCmd.Flags().BoolVar(&noSync, "no-sync", false, "не запускать попутную синхронизацию")
}
