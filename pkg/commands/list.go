package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/list"
)

func addList(topLevel *cobra.Command, so *options.StoreOptions) {
	ido := &options.IDOptions{}
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the tasks",
		Example: `
todo list
todo ls --filter active -k
todo list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			f, err := fo.Filter()
			if err != nil {
				return oo.HandleError(err)
			}
			session, err := so.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			r := list.List{
				Filter: f,
				ShowID: ido.ShowID,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
				Store:  session.Store,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, ido)
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
