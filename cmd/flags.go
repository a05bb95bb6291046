package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peekknuf/modelfit/internal/heuristics"
)

var (
	flagsRows         int
	flagsCols         int
	flagsMissingShare float64
	flagsNumeric      int
	flagsCategorical  int
	flagsJSON         bool
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Evaluate quality flags from aggregate statistics",
	Long: `Evaluate the basic quality rule set against caller-supplied
dataset-level statistics, without profiling raw data.

Example:
  modelfit flags --rows 10000 --cols 12 --missing-share 0.15 --numeric 8 --categorical 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		verdict, err := engine.FromAggregates(heuristics.AggregateFeatures{
			NumRows:         flagsRows,
			NumCols:         flagsCols,
			MaxMissingShare: flagsMissingShare,
			NumericCols:     flagsNumeric,
			CategoricalCols: flagsCategorical,
		})
		if err != nil {
			return err
		}

		if flagsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(verdict)
		}

		fmt.Printf("Shape: %d rows x %d columns\n", verdict.Shape.NumRows, verdict.Shape.NumCols)
		fmt.Printf("Quality score: %.2f\n", verdict.QualityScore)
		fmt.Printf("OK for model: %v\n", verdict.OKForModel)
		triggered := make([]string, 0)
		for _, name := range heuristics.BasicFlags {
			if verdict.Flags[name] {
				triggered = append(triggered, name)
			}
		}
		if len(triggered) == 0 {
			fmt.Println("Flags: none")
		} else {
			fmt.Printf("Flags: %s\n", strings.Join(triggered, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flagsCmd)
	flagsCmd.Flags().IntVar(&flagsRows, "rows", 0, "Number of rows")
	flagsCmd.Flags().IntVar(&flagsCols, "cols", 0, "Number of columns")
	flagsCmd.Flags().Float64Var(&flagsMissingShare, "missing-share", 0,
		"Maximum per-column missing share, in [0,1]")
	flagsCmd.Flags().IntVar(&flagsNumeric, "numeric", 0, "Number of numeric columns")
	flagsCmd.Flags().IntVar(&flagsCategorical, "categorical", 0, "Number of categorical columns")
	flagsCmd.Flags().BoolVar(&flagsJSON, "json", false, "Emit JSON instead of text")

	flagsCmd.MarkFlagRequired("rows")
	flagsCmd.MarkFlagRequired("cols")
}
