package profiler

import (
	"math"

	"github.com/peekknuf/modelfit/internal/tabular"
)

const maxExampleValues = 3

// NumericStats holds the numeric portion of a column profile. It is
// present only when the column is numeric and has at least one
// non-missing value; min/max/mean are undefined otherwise.
type NumericStats struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	Std       float64 `json:"std"`
	ZeroCount int     `json:"zero_count"`
}

// ColumnProfile is the per-column statistical summary. Immutable once
// built; everything downstream (flags, reports) reads from it.
type ColumnProfile struct {
	Name          string        `json:"name"`
	Kind          tabular.Kind  `json:"-"`
	KindName      string        `json:"kind"`
	NonNullCount  int           `json:"non_null_count"`
	MissingCount  int           `json:"missing_count"`
	MissingShare  float64       `json:"missing_share"`
	UniqueCount   int           `json:"unique_count"`
	ExampleValues []string      `json:"example_values"`
	Numeric       *NumericStats `json:"numeric_stats,omitempty"`
}

// ProfileColumn computes the profile of one column. Pure function of
// its input: same column, same profile.
func ProfileColumn(c tabular.Column) ColumnProfile {
	rows := c.Len()

	p := ColumnProfile{
		Name:          c.Name,
		Kind:          c.Kind,
		KindName:      c.Kind.String(),
		ExampleValues: []string{},
	}

	seen := make(map[string]struct{})
	var sum, sumSq, min, max float64
	zeroes := 0

	for i := 0; i < rows; i++ {
		if c.IsMissing(i) {
			p.MissingCount++
			continue
		}
		p.NonNullCount++

		v := c.Values[i]
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			if len(p.ExampleValues) < maxExampleValues {
				p.ExampleValues = append(p.ExampleValues, v)
			}
		}

		if c.Kind == tabular.Numeric {
			f := c.Floats[i]
			if p.NonNullCount == 1 {
				min, max = f, f
			} else {
				if f < min {
					min = f
				}
				if f > max {
					max = f
				}
			}
			sum += f
			sumSq += f * f
			if f == 0 {
				zeroes++
			}
		}
	}

	p.UniqueCount = len(seen)
	if rows > 0 {
		p.MissingShare = float64(p.MissingCount) / float64(rows)
	}

	if c.Kind == tabular.Numeric && p.NonNullCount > 0 {
		n := float64(p.NonNullCount)
		stats := &NumericStats{Min: min, Max: max, Mean: sum / n, ZeroCount: zeroes}
		// Sample std; undefined variance below two observations is pinned to 0.
		if p.NonNullCount > 1 {
			variance := (sumSq - sum*sum/n) / (n - 1)
			if variance > 0 {
				stats.Std = math.Sqrt(variance)
			}
		}
		p.Numeric = stats
	}

	return p
}

// DatasetSummary aggregates the per-column profiles for one view.
type DatasetSummary struct {
	NumRows         int             `json:"n_rows"`
	NumCols         int             `json:"n_cols"`
	Columns         []ColumnProfile `json:"columns"`
	MaxMissingShare float64         `json:"max_missing_share"`
}

// Summarize profiles every column of the view in order and rolls the
// profiles up into a DatasetSummary. An empty view yields a summary
// with MaxMissingShare 0, not an error.
func Summarize(v *tabular.View) DatasetSummary {
	s := DatasetSummary{
		NumRows: v.NumRows(),
		NumCols: v.NumCols(),
		Columns: make([]ColumnProfile, 0, v.NumCols()),
	}
	for _, c := range v.Columns() {
		p := ProfileColumn(c)
		s.Columns = append(s.Columns, p)
		if p.MissingShare > s.MaxMissingShare {
			s.MaxMissingShare = p.MissingShare
		}
	}
	return s
}
