package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbourre/lanparty/pkg/api"
	"github.com/nbourre/lanparty/pkg/cache"
	"github.com/nbourre/lanparty/pkg/metrics"
)

// apiKeyPrefix keeps API entries apart from CLI runs sharing a backend.
const apiKeyPrefix = "api:"

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   analysisFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

  POST /v1/analyze?prefix=t   body: edge list, response: JSON report
  POST /v1/render?format=svg  body: edge list, response: diagram
  GET  /healthz
  GET  /metrics               Prometheus metrics

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			ctx := cmd.Context()

			runner := c.newRunner(ctx, noCache)
			runner.Keyer = cache.NewScopedKeyer(runner.Keyer, apiKeyPrefix)
			defer runner.Close()

			reg := metrics.NewRegistry()
			reg.Register()

			srv := api.NewServer(runner,
				api.WithLogger(c.Logger),
				api.WithMetricsHandler(reg.Handler()),
				api.WithDefaults(c.options(cmd, flags)),
			)
			printInfo(cmd.ErrOrStderr(), "Serving on %s", StyleValue.Render(addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
