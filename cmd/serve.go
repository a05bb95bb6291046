package cmd

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peekknuf/modelfit/internal/config"
	"github.com/peekknuf/modelfit/internal/heuristics"
	"github.com/peekknuf/modelfit/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quality engine over HTTP",
	Long: `Start an HTTP server exposing the quality engine:

  GET  /health
  POST /api/v1/quality/flags   aggregate features -> basic verdict
  POST /api/v1/quality/check   multipart CSV upload -> full flags`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cmd.Flags().Changed("host") {
			cfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		path := policyFile
		if path == "" {
			path = cfg.PolicyPath
		}
		policy, err := config.LoadPolicy(path)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Info().
			Int("min_rows", policy.MinRows).
			Int("max_cols", policy.MaxCols).
			Float64("pass_score", policy.PassScore).
			Msg("policy loaded")

		srv := server.New(cfg, heuristics.NewEngine(policy))
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "Bind address")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Bind port")
}
