package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmpolyakov/todolist/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду для выхода пользователя.
//
// Команда завершает сессию на сервере и удаляет сессионный токен
// из локального конфигурационного файла. Если сервер недоступен,
// локальный токен всё равно стирается.
//
// Пример использования:
//
//	todoctl logout
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Выход (завершить сессию на сервере)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.SessionToken == "" {
				return fmt.Errorf("no session, run: todoctl login")
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.Logout(app.Creds.SessionToken); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "server logout failed: %v\n", err)
			}

			app.Creds.SessionToken = ""
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
