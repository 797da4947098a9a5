// cmd/client/cmd/init.go
package cmd

import (
	"pixelz/cmd/client/cmd/auth"
	"pixelz/cmd/client/cmd/leaderboard"
	"pixelz/cmd/client/cmd/play"
	"pixelz/cmd/client/cmd/profile"
	"pixelz/cmd/client/cmd/sync"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	// Игровые команды
	rootCmd.AddCommand(play.PlayCmd)
	rootCmd.AddCommand(profile.NicknameCmd)
	rootCmd.AddCommand(profile.ChallengeCmd)

	// Синхронизация и таблицы лидеров
	rootCmd.AddCommand(sync.SyncCmd)
	rootCmd.AddCommand(sync.QueueCmd)
	rootCmd.AddCommand(leaderboard.LeaderboardCmd)
}
