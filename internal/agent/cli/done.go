package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDoneCmd создаёт CLI-команду для переключения статуса задачи.
//
// Повторный вызов на той же задаче возвращает её в невыполненное состояние.
//
// Пример использования:
//
//	todoctl done 3
func NewDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "done <id>",
		Short:        "Переключить статус задачи (выполнена/не выполнена)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.SessionToken == "" {
				return fmt.Errorf("no session, run: todoctl login")
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad todo id %q", args[0])
			}

			c := NewAPIClient(app.ServerURL)
			todo, err := c.ToggleTodo(id, app.Creds.SessionToken)
			if err != nil {
				return err
			}

			state := "open"
			if todo.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "todo %d is now %s\n", todo.ID, state)
			return nil
		},
	}
}
