package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, so *options.StoreOptions) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Example: `
todo add buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := so.Open()
			if err != nil {
				return err
			}
			r := add.Add{
				Text:   strings.Join(args, " "),
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
