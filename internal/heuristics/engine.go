package heuristics

import (
	"strings"

	"github.com/peekknuf/modelfit/internal/profiler"
	"github.com/peekknuf/modelfit/internal/tabular"
)

// AggregateFeatures is the lightweight input path: caller-supplied
// dataset-level statistics, used when the raw table is unavailable.
// The engine trusts these beyond the basic range checks; it does not
// verify that numeric and categorical counts sum to the column count.
type AggregateFeatures struct {
	NumRows         int     `json:"n_rows"`
	NumCols         int     `json:"n_cols"`
	MaxMissingShare float64 `json:"max_missing_share"`
	NumericCols     int     `json:"numeric_cols"`
	CategoricalCols int     `json:"categorical_cols"`
}

// Flags maps flag name to whether it triggered.
type Flags map[string]bool

// Shape is the row/column count of the evaluated dataset.
type Shape struct {
	NumRows int `json:"n_rows"`
	NumCols int `json:"n_cols"`
}

// Verdict is the engine's output: the triggered flags, the aggregated
// score, and the pass decision. Built fresh per call, never shared.
type Verdict struct {
	OKForModel      bool    `json:"ok_for_model"`
	QualityScore    float64 `json:"quality_score"`
	Flags           Flags   `json:"flags"`
	Shape           Shape   `json:"dataset_shape"`
	MaxMissingShare float64 `json:"max_missing_share"`
}

// FlagMap folds the numeric auxiliary fields into the flags mapping,
// producing the extended "full flags" response shape.
func (v Verdict) FlagMap() map[string]any {
	m := make(map[string]any, len(v.Flags)+2)
	for name, on := range v.Flags {
		m[name] = on
	}
	m["max_missing_share"] = v.MaxMissingShare
	m["quality_score"] = v.QualityScore
	return m
}

// Engine evaluates the quality rule set under a fixed Policy. It holds
// no other state; every method is a pure function of its input and may
// be called concurrently.
type Engine struct {
	policy Policy
}

func NewEngine(p Policy) *Engine {
	return &Engine{policy: p}
}

// Policy returns the engine's configuration.
func (e *Engine) Policy() Policy { return e.policy }

// FromAggregates evaluates the basic rule set against caller-supplied
// aggregate features.
func (e *Engine) FromAggregates(f AggregateFeatures) (Verdict, error) {
	if f.NumRows < 0 || f.NumCols < 0 {
		return Verdict{}, tabular.Invalidf("negative dataset shape: %d x %d", f.NumRows, f.NumCols)
	}
	if f.NumericCols < 0 || f.CategoricalCols < 0 {
		return Verdict{}, tabular.Invalidf("negative column counts: numeric=%d categorical=%d", f.NumericCols, f.CategoricalCols)
	}
	if f.MaxMissingShare < 0 || f.MaxMissingShare > 1 {
		return Verdict{}, tabular.Invalidf("max_missing_share %v outside [0,1]", f.MaxMissingShare)
	}

	flags := e.basicFlags(f)
	return e.verdict(flags, Shape{f.NumRows, f.NumCols}, f.MaxMissingShare), nil
}

// FromSummary evaluates the full rule set against a dataset summary.
// Degenerate summaries (zero rows or columns) evaluate normally: the
// per-column predicates are vacuously false.
func (e *Engine) FromSummary(s profiler.DatasetSummary) (Verdict, error) {
	if s.NumRows < 0 || s.NumCols < 0 {
		return Verdict{}, tabular.Invalidf("negative dataset shape: %d x %d", s.NumRows, s.NumCols)
	}

	numeric, categorical := 0, 0
	for _, c := range s.Columns {
		if c.Kind == tabular.Numeric {
			numeric++
		} else {
			categorical++
		}
	}

	flags := e.basicFlags(AggregateFeatures{
		NumRows:         s.NumRows,
		NumCols:         s.NumCols,
		MaxMissingShare: s.MaxMissingShare,
		NumericCols:     numeric,
		CategoricalCols: categorical,
	})

	flags[FlagConstantColumns] = anyColumn(s, func(c profiler.ColumnProfile) bool {
		return c.NonNullCount >= 1 && c.UniqueCount <= 1
	})
	flags[FlagHighCardinalityCategoric] = anyColumn(s, func(c profiler.ColumnProfile) bool {
		return c.Kind == tabular.Categorical && c.UniqueCount > e.policy.MaxCategoricalUnique
	})
	// Substring match on the column name is a known-weak heuristic
	// ("valid", "acid" trigger it too) kept for fidelity with the rule set.
	flags[FlagSuspiciousIDDuplicates] = anyColumn(s, func(c profiler.ColumnProfile) bool {
		return strings.Contains(strings.ToLower(c.Name), "id") && c.UniqueCount < c.NonNullCount
	})
	flags[FlagManyZeroValues] = anyColumn(s, func(c profiler.ColumnProfile) bool {
		if c.Kind != tabular.Numeric || c.Numeric == nil || c.NonNullCount == 0 {
			return false
		}
		return float64(c.Numeric.ZeroCount)/float64(c.NonNullCount) > e.policy.MaxZeroShare
	})

	return e.verdict(flags, Shape{s.NumRows, s.NumCols}, s.MaxMissingShare), nil
}

func (e *Engine) basicFlags(f AggregateFeatures) Flags {
	return Flags{
		FlagTooFewRows:           f.NumRows < e.policy.MinRows,
		FlagTooManyColumns:       f.NumCols > e.policy.MaxCols,
		FlagTooManyMissing:       f.MaxMissingShare > e.policy.MaxMissingShare,
		FlagNoNumericColumns:     f.NumericCols == 0,
		FlagNoCategoricalColumns: f.CategoricalCols == 0,
	}
}

func anyColumn(s profiler.DatasetSummary, pred func(profiler.ColumnProfile) bool) bool {
	for _, c := range s.Columns {
		if pred(c) {
			return true
		}
	}
	return false
}
