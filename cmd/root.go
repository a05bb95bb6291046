package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/peekknuf/modelfit/internal/config"
	"github.com/peekknuf/modelfit/internal/heuristics"
)

var (
	policyFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "modelfit",
	Short: "Dataset fitness-for-modeling checker",
	Long: `Estimates whether a tabular dataset is fit for modeling by
computing structural and statistical quality signals and folding
them into a single score and a set of boolean flags`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy", "",
		"TOML policy file overriding the built-in thresholds and penalties (also MODELFIT_POLICY)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (trace, debug, info, warn, error)")
}

// loadEngine builds the flag engine from the built-in policy plus any
// overrides from --policy or MODELFIT_POLICY.
func loadEngine() (*heuristics.Engine, error) {
	path := policyFile
	if path == "" {
		path = os.Getenv("MODELFIT_POLICY")
	}
	policy, err := config.LoadPolicy(path)
	if err != nil {
		return nil, err
	}
	return heuristics.NewEngine(policy), nil
}
