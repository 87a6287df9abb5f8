package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRemoveCmd создаёт CLI-команду для удаления задачи.
//
// Пример использования:
//
//	todoctl rm 3
func NewRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "rm <id>",
		Short:        "Удалить задачу",
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
			if err := c.DeleteTodo(id, app.Creds.SessionToken); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted todo %d\n", id)
			return nil
		},
	}
}
