package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
)

func New() *cobra.Command {
	so := &options.StoreOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: base.Wrap80("A todo list on the command line, in the terminal, in the browser and over MCP."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	options.AddStoreArgs(cmd, so)

	AddCommands(cmd, so)
	return cmd
}

func AddCommands(topLevel *cobra.Command, so *options.StoreOptions) {
	addAdd(topLevel, so)
	addToggle(topLevel, so)
	addRemove(topLevel, so)
	addEdit(topLevel, so)
	addList(topLevel, so)
	addUI(topLevel, so)
	addServe(topLevel, so)
	addMCP(topLevel, so)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
