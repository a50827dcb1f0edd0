package commands

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command, so *options.StoreOptions) {
	var (
		transport string
		addr      string
		path      string
		tlsCert   string
		tlsKey    string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the todo list as tools (add, toggle,
edit, remove, list) and as a readable resource.`,
		Example: `
todo mcp
todo mcp --transport stdio
todo mcp --addr 127.0.0.1:0 --path /todo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := mcp.Transport(strings.ToLower(strings.TrimSpace(transport)))
			switch t {
			case "", mcp.TransportHTTP, mcp.TransportStdio:
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			session, err := so.Open()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := mcp.Runner{
				Store:            session.Store,
				Name:             "todo",
				Version:          version,
				Transport:        t,
				HTTPListenAddr:   addr,
				HTTPEndpointPath: path,
				HTTPServerCert:   tlsCert,
				HTTPServerKey:    tlsKey,
			}
			if t != mcp.TransportStdio {
				if !strings.HasPrefix(path, "/") {
					r.HTTPEndpointPath = "/" + path
				}
				scheme := "http"
				if tlsCert != "" {
					scheme = "https"
				}
				r.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s://%s%s\n", scheme, a, r.HTTPEndpointPath)
				}
			}
			return r.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8081", "listen address for the http transport")
	cmd.Flags().StringVar(&path, "path", "/mcp", "endpoint path for the http transport")
	cmd.Flags().StringVar(&tlsCert, "tls-cert", "", "TLS certificate file, serves https with --tls-key")
	cmd.Flags().StringVar(&tlsKey, "tls-key", "", "TLS private key file")

	topLevel.AddCommand(cmd)
}
