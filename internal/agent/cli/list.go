package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCmd создаёт CLI-команду для вывода всех задач пользователя.
//
// Задачи выводятся таблицей, новые сверху. Выполненные задачи
// помечаются крестиком в колонке DONE.
//
// Пример использования:
//
//	todoctl list
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "Показать все задачи",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.SessionToken == "" {
				return fmt.Errorf("no session, run: todoctl login")
			}

			c := NewAPIClient(app.ServerURL)
			todos, err := c.ListTodos(app.Creds.SessionToken)
			if err != nil {
				return err
			}

			if len(todos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no todos yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tTITLE\tCREATED")
			for _, t := range todos {
				done := " "
				if t.Completed {
					done = "x"
				}
				fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\n", t.ID, done, t.Title, t.CreatedAt)
			}
			return w.Flush()
		},
	}
}
