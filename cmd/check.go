package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/peekknuf/modelfit/internal/connectors"
	"github.com/peekknuf/modelfit/internal/heuristics"
	"github.com/peekknuf/modelfit/internal/parser"
	"github.com/peekknuf/modelfit/internal/profiler"
	"github.com/peekknuf/modelfit/internal/tabular"
)

var (
	checkRecursive bool
	checkVerbose   bool
	checkJSON      bool
	checkOutput    string
	checkWorkers   int
	checkDelimiter string
)

type checkResult struct {
	Path      string                  `json:"path"`
	Size      int64                   `json:"size,omitempty"`
	Summary   profiler.DatasetSummary `json:"summary"`
	Verdict   heuristics.Verdict      `json:"verdict"`
	ElapsedMs float64                 `json:"elapsed_ms"`

	view *tabular.View
	Err  error `json:"-"`
}

var checkCmd = &cobra.Command{
	Use:   "check [file or directory]",
	Short: "Check CSV files for modeling fitness",
	Long: `Profile CSV files and evaluate the quality rule set, producing
a verdict per file: triggered flags, a quality score in [0,1], and
an ok-for-model decision.

Examples:
  modelfit check data.csv
  modelfit check data.csv --verbose
  modelfit check /data/ --recursive --workers 4
  modelfit check data.csv --json --output verdict.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", target, err)
		}

		if info.IsDir() {
			return checkDirectory(cmd.Context(), target, engine)
		}

		result := checkFile(target, engine)
		if result.Err != nil {
			return result.Err
		}
		return writeCheckOutput([]checkResult{result})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkRecursive, "recursive", "r", false,
		"Search directories recursively")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show per-column profiles, the missing table and top categories")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"Emit JSON instead of text")
	checkCmd.Flags().StringVar(&checkOutput, "output", "",
		"Output file (default: stdout)")
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0,
		"Parallel workers for directory mode (default: CPU count)")
	checkCmd.Flags().StringVar(&checkDelimiter, "delimiter", ",",
		"Field delimiter")
}

func readerOptions() parser.Options {
	opts := parser.DefaultOptions()
	if checkDelimiter != "" {
		opts.Delimiter = []rune(checkDelimiter)[0]
	}
	return opts
}

func checkFile(path string, engine *heuristics.Engine) checkResult {
	result := checkResult{Path: path}
	if info, err := os.Stat(path); err == nil {
		result.Size = info.Size()
	}

	view, err := parser.ReadTableFile(path, readerOptions())
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}
	result.view = view

	start := time.Now()
	result.Summary = profiler.Summarize(view)
	result.Verdict, err = engine.FromSummary(result.Summary)
	result.ElapsedMs = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
	}
	return result
}

func checkDirectory(ctx context.Context, dir string, engine *heuristics.Engine) error {
	files, err := connectors.DiscoverFiles(dir, "csv", connectors.DiscoveryOptions{
		Recursive: checkRecursive,
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No CSV files found in %s\n", dir)
		return nil
	}

	workers := checkWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Checking files..."),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var mu sync.Mutex
	results := make([]checkResult, 0, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result := checkFile(file.Path, engine)
			result.Size = file.Size
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	bar.Finish()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return writeCheckOutput(results)
}

func writeCheckOutput(results []checkResult) error {
	var out strings.Builder

	if checkJSON {
		ok := make([]checkResult, 0, len(results))
		for _, r := range results {
			if r.Err != nil {
				log.Error().Err(r.Err).Msg("check failed")
				continue
			}
			ok = append(ok, r)
		}
		enc := json.NewEncoder(&out)
		enc.SetIndent("", "  ")
		if len(ok) == 1 {
			if err := enc.Encode(ok[0]); err != nil {
				return err
			}
		} else {
			if err := enc.Encode(ok); err != nil {
				return err
			}
		}
	} else {
		for _, r := range results {
			if r.Err != nil {
				log.Error().Err(r.Err).Msg("check failed")
				continue
			}
			renderResult(&out, r)
		}
	}

	if checkOutput != "" {
		if err := os.WriteFile(checkOutput, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", checkOutput, err)
		}
		fmt.Printf("Results saved to %s\n", checkOutput)
		return nil
	}
	fmt.Print(out.String())
	return nil
}

func renderResult(out *strings.Builder, r checkResult) {
	v := r.Verdict

	fmt.Fprintf(out, "File: %s", filepath.Base(r.Path))
	if r.Size > 0 {
		fmt.Fprintf(out, " (%s)", humanize.Bytes(uint64(r.Size)))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Shape: %d rows x %d columns\n", v.Shape.NumRows, v.Shape.NumCols)
	fmt.Fprintf(out, "  Max missing share: %.2f\n", v.MaxMissingShare)
	fmt.Fprintf(out, "  Quality score: %.2f\n", v.QualityScore)
	fmt.Fprintf(out, "  OK for model: %v\n", v.OKForModel)

	triggered := make([]string, 0)
	for _, name := range heuristics.AllFlags {
		if v.Flags[name] {
			triggered = append(triggered, name)
		}
	}
	if len(triggered) == 0 {
		fmt.Fprintf(out, "  Flags: none\n")
	} else {
		fmt.Fprintf(out, "  Flags: %s\n", strings.Join(triggered, ", "))
	}
	fmt.Fprintf(out, "  Processing time: %.2fms\n", r.ElapsedMs)

	if checkVerbose {
		renderDetails(out, r.Summary, r.view)
	}
	fmt.Fprintln(out)
}

const (
	topCategoriesMaxColumns = 5
	topCategoriesTopK       = 3
)

func renderDetails(out *strings.Builder, s profiler.DatasetSummary, view *tabular.View) {
	fmt.Fprintln(out, "\n  Column profiles:")
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	header, rows := profiler.FlattenSummary(s)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintf(tw, "\t%s\n", strings.Join(row, "\t"))
	}
	tw.Flush()

	problematic := profiler.ProblematicColumns(profiler.MissingTable(s), 0)
	if len(problematic) > 0 {
		fmt.Fprintln(out, "\n  Columns with missing values:")
		for _, e := range problematic {
			fmt.Fprintf(out, "    %s: %d missing (%.1f%%)\n", e.Name, e.MissingCount, e.MissingShare*100)
		}
	}

	if view == nil {
		return
	}

	topCats := profiler.TopCategories(view, topCategoriesMaxColumns, topCategoriesTopK)
	if len(topCats) > 0 {
		fmt.Fprintln(out, "\n  Top categories:")
		for _, c := range s.Columns {
			ranked, ok := topCats[c.Name]
			if !ok {
				continue
			}
			parts := make([]string, 0, len(ranked))
			for _, cc := range ranked {
				parts = append(parts, fmt.Sprintf("%s (%d)", cc.Value, cc.Count))
			}
			fmt.Fprintf(out, "    %s: %s\n", c.Name, strings.Join(parts, ", "))
		}
	}

	names, matrix := profiler.CorrelationMatrix(view)
	if len(names) > 1 {
		fmt.Fprintln(out, "\n  Correlation matrix:")
		tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "\t\t%s\n", strings.Join(names, "\t"))
		for i, name := range names {
			cells := make([]string, len(names))
			for j := range names {
				cells[j] = fmt.Sprintf("%.2f", matrix[i][j])
			}
			fmt.Fprintf(tw, "\t%s\t%s\n", name, strings.Join(cells, "\t"))
		}
		tw.Flush()
	}
}
