package profiler

import (
	"fmt"
	"math"
	"sort"

	"github.com/peekknuf/modelfit/internal/tabular"
)

// MissingEntry is one row of the per-column missingness table.
type MissingEntry struct {
	Name         string  `json:"name"`
	MissingCount int     `json:"missing_count"`
	MissingShare float64 `json:"missing_share"`
}

// MissingTable lists missing counts and shares per column, in the
// summary's column order.
func MissingTable(s DatasetSummary) []MissingEntry {
	table := make([]MissingEntry, 0, len(s.Columns))
	for _, c := range s.Columns {
		table = append(table, MissingEntry{
			Name:         c.Name,
			MissingCount: c.MissingCount,
			MissingShare: c.MissingShare,
		})
	}
	return table
}

// ProblematicColumns filters the missing table down to columns whose
// missing share exceeds the threshold, worst first.
func ProblematicColumns(table []MissingEntry, threshold float64) []MissingEntry {
	var out []MissingEntry
	for _, e := range table {
		if e.MissingShare > threshold {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MissingShare > out[j].MissingShare
	})
	return out
}

// CategoryCount is one value of a categorical column with its frequency.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopCategories returns, for up to maxColumns categorical columns in
// view order, the topK most frequent non-missing values. Frequency
// ties resolve to the value seen first.
func TopCategories(v *tabular.View, maxColumns, topK int) map[string][]CategoryCount {
	out := make(map[string][]CategoryCount)
	taken := 0
	for _, c := range v.Columns() {
		if c.Kind != tabular.Categorical {
			continue
		}
		if taken >= maxColumns {
			break
		}
		taken++

		counts := make(map[string]int)
		firstSeen := make(map[string]int)
		order := 0
		for i := 0; i < c.Len(); i++ {
			if c.IsMissing(i) {
				continue
			}
			val := c.Values[i]
			if _, ok := counts[val]; !ok {
				firstSeen[val] = order
				order++
			}
			counts[val]++
		}

		ranked := make([]CategoryCount, 0, len(counts))
		for val, n := range counts {
			ranked = append(ranked, CategoryCount{Value: val, Count: n})
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Count != ranked[j].Count {
				return ranked[i].Count > ranked[j].Count
			}
			return firstSeen[ranked[i].Value] < firstSeen[ranked[j].Value]
		})
		if len(ranked) > topK {
			ranked = ranked[:topK]
		}
		out[c.Name] = ranked
	}
	return out
}

// CorrelationMatrix computes Pearson correlations between all numeric
// columns over pairwise-complete observations. Pairs with fewer than
// two shared rows or zero variance get 0. Returns the column names and
// the symmetric matrix in the same order.
func CorrelationMatrix(v *tabular.View) ([]string, [][]float64) {
	var cols []tabular.Column
	for _, c := range v.Columns() {
		if c.Kind == tabular.Numeric {
			cols = append(cols, c)
		}
	}

	names := make([]string, len(cols))
	matrix := make([][]float64, len(cols))
	for i := range cols {
		names[i] = cols[i].Name
		matrix[i] = make([]float64, len(cols))
		matrix[i][i] = 1
	}

	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := pearson(cols[i], cols[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return names, matrix
}

func pearson(a, b tabular.Column) float64 {
	var n float64
	var sumA, sumB, sumAA, sumBB, sumAB float64
	rows := a.Len()
	for i := 0; i < rows; i++ {
		if a.IsMissing(i) || b.IsMissing(i) {
			continue
		}
		x, y := a.Floats[i], b.Floats[i]
		n++
		sumA += x
		sumB += y
		sumAA += x * x
		sumBB += y * y
		sumAB += x * y
	}
	if n < 2 {
		return 0
	}
	cov := sumAB - sumA*sumB/n
	varA := sumAA - sumA*sumA/n
	varB := sumBB - sumB*sumB/n
	if varA <= 0 || varB <= 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}

// FlattenSummary renders the summary as a header plus one row of
// strings per column, for table printing.
func FlattenSummary(s DatasetSummary) ([]string, [][]string) {
	header := []string{"name", "kind", "non_null", "missing_share", "unique", "examples"}
	rows := make([][]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		examples := ""
		for i, v := range c.ExampleValues {
			if i > 0 {
				examples += ", "
			}
			examples += v
		}
		rows = append(rows, []string{
			c.Name,
			c.KindName,
			fmt.Sprintf("%d", c.NonNullCount),
			fmt.Sprintf("%.2f", c.MissingShare),
			fmt.Sprintf("%d", c.UniqueCount),
			examples,
		})
	}
	return header, rows
}
