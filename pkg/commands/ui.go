package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/tui"
)

func addUI(topLevel *cobra.Command, so *options.StoreOptions) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
todo ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := so.Open()
			if err != nil {
				return err
			}
			i := tui.UI{
				Store:   session.Store,
				Storage: session.Storage,
				Key:     session.Config.Key(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
