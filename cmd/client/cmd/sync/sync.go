package sync

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pixelz/cmd/client/cmd/types"
	"pixelz/internal/app/client"
)

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Отправить очередь событий на сервер",
	Long: `Выполняет одну попытку синхронизации: вся очередь уходит
одним пакетом, сервер отвечает позиционно по каждому событию.

При сетевой ошибке очередь остается нетронутой — тот же пакет будет
повторен при следующем запуске. Отклоненные сервером события не
повторяются: отказ детерминирован.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Синхронизация ===")

		start := time.Now()
		result, err := app.Sync(cmd.Context())
		switch {
		case errors.Is(err, client.ErrNotSignedIn):
			fmt.Println("⚠️  Вход не выполнен. Очередь сохранена: pixelz auth login")
			return nil
		case errors.Is(err, client.ErrNothingToSync):
			fmt.Println("Очередь пуста, синхронизировать нечего")
			return nil
		case errors.Is(err, client.ErrSyncInProgress):
			fmt.Println("⚠️  Синхронизация уже выполняется")
			return nil
		case err != nil:
			return fmt.Errorf("ошибка синхронизации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Синхронизация завершена!")
		fmt.Printf("Время выполнения: %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Принято сервером: %d\n", result.Accepted)
		if result.Rejected > 0 {
			fmt.Printf("Отклонено: %d (повторной отправки не будет)\n", result.Rejected)
		}

		count, err := app.Queue().Count()
		if err != nil {
			return err
		}
		fmt.Printf("Осталось в очереди: %d\n", count)

		return nil
	},
}
