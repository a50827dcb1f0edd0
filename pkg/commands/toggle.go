package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command, so *options.StoreOptions) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done", "complete"},
		Short:   "Mark a task completed, or open again",
		Example: `
todo toggle 1712345678901
`,
		Args:              cobra.ExactArgs(1),
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
			r := toggle.Toggle{
				ID:     id,
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
