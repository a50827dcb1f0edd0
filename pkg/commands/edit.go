package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, so *options.StoreOptions) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace the text of a task",
		Example: `
todo edit 1712345678901 buy oat milk
`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: taskCompletions(so),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			session, err := so.Open()
			if err != nil {
				return err
			}
			r := edit.Edit{
				ID:     id,
				Text:   strings.Join(args[1:], " "),
				ShowID: ido.ShowID,
				Out:    cmd.OutOrStdout(),
				Store:  session.Store,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
