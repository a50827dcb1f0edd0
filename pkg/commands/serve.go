package commands

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command, so *options.StoreOptions) {
	var (
		addr  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the todo list as a web page",
		Example: `
todo serve
todo serve --addr 127.0.0.1:9000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := so.Open()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = session.Config.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := serve.Serve{
				Store: session.Store,
				Addr:  addr,
				Title: title,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "todo list served on http://%s/\n", a)
				},
			}
			return r.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, defaults to the addr config value")
	cmd.Flags().StringVar(&title, "title", "Todo", "page title")

	topLevel.AddCommand(cmd)
}
