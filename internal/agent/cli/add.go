package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAddCmd создаёт CLI-команду для добавления новой задачи.
//
// Текст задачи передаётся аргументами команды (склеиваются через пробел).
//
// Пример использования:
//
//	todoctl add "buy milk"
//	todoctl add call mom tomorrow
func NewAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "add <title>",
		Short:        "Добавить задачу",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.SessionToken == "" {
				return fmt.Errorf("no session, run: todoctl login")
			}

			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("empty title")
			}

			c := NewAPIClient(app.ServerURL)
			todo, err := c.AddTodo(title, app.Creds.SessionToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added todo %d: %s\n", todo.ID, todo.Title)
			return nil
		},
	}
}
