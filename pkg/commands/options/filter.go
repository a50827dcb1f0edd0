package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/filter"
)

// FilterOptions
type FilterOptions struct {
	Name string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	names := make([]string, 0, 3)
	for _, f := range filter.Filters() {
		names = append(names, f.String())
	}
	cmd.Flags().StringVarP(&o.Name, "filter", "f", filter.All.String(),
		"Which tasks to show. One of "+strings.Join(names, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *FilterOptions) Filter() (filter.Filter, error) {
	return filter.Parse(o.Name)
}
