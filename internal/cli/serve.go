package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/jifkit/internal/server"
)

// serveCommand creates the serve command that runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Serve runs the JSON API with Prometheus metrics at /metrics. Results are
cached in memory as configured in the [server] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			srv := server.New(cfg, c.Logger)
			srv.InstallHooks()
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
