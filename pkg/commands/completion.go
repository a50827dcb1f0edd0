package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/log"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(todo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(todo completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// taskCompletions offers task ids, with the task text as the description, for
// the first positional argument.
func taskCompletions(so *options.StoreOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		session, err := so.Open()
		if err != nil {
			log.Debug().Err(err).Msg("completion: open store")
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var ids []string
		for _, t := range session.Store.Tasks() {
			ids = append(ids, strconv.FormatInt(t.ID, 10)+"\t"+t.Text)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
