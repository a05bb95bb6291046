package profiler

import (
	"math"
	"testing"

	"github.com/peekknuf/modelfit/internal/tabular"
)

func TestMissingTable(t *testing.T) {
	s := Summarize(sampleView(t))
	table := MissingTable(s)

	if len(table) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(table))
	}
	if table[0].Name != "age" || table[0].MissingCount != 1 {
		t.Errorf("unexpected first entry: %+v", table[0])
	}
	if table[1].MissingCount != 0 {
		t.Errorf("height should have no missing values, got %d", table[1].MissingCount)
	}
}

func TestProblematicColumnsThresholds(t *testing.T) {
	mask := func(missing int) []bool {
		m := make([]bool, 10)
		for i := 0; i < missing; i++ {
			m[i] = true
		}
		return m
	}
	values := make([]float64, 10)
	v, err := tabular.New([]tabular.Column{
		tabular.NumericColumn("col_30pct", values, mask(3)),
		tabular.NumericColumn("col_50pct", values, mask(5)),
		tabular.NumericColumn("col_complete", values, nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	table := MissingTable(Summarize(v))

	cases := []struct {
		threshold float64
		want      []string
	}{
		{0.25, []string{"col_50pct", "col_30pct"}},
		{0.4, []string{"col_50pct"}},
		{0.6, nil},
	}
	for _, tc := range cases {
		got := ProblematicColumns(table, tc.threshold)
		if len(got) != len(tc.want) {
			t.Errorf("threshold %.2f: expected %d columns, got %d", tc.threshold, len(tc.want), len(got))
			continue
		}
		for i, name := range tc.want {
			if got[i].Name != name {
				t.Errorf("threshold %.2f entry %d: expected %s, got %s", tc.threshold, i, name, got[i].Name)
			}
		}
	}
}

func TestTopCategories(t *testing.T) {
	v, err := tabular.New([]tabular.Column{
		tabular.CategoricalColumn("city", []string{"A", "B", "A", "C", "B", "A"}, nil),
		tabular.NumericColumn("x", []float64{1, 2, 3, 4, 5, 6}, nil),
	})
	if err != nil {
		t.Fatal(err)
	}

	top := TopCategories(v, 5, 2)
	ranked, ok := top["city"]
	if !ok {
		t.Fatal("city not present in top categories")
	}
	if _, ok := top["x"]; ok {
		t.Error("numeric column must not appear in top categories")
	}
	if len(ranked) != 2 {
		t.Fatalf("expected top 2, got %d", len(ranked))
	}
	if ranked[0].Value != "A" || ranked[0].Count != 3 {
		t.Errorf("expected A x3 first, got %+v", ranked[0])
	}
	if ranked[1].Value != "B" || ranked[1].Count != 2 {
		t.Errorf("expected B x2 second, got %+v", ranked[1])
	}
}

func TestTopCategoriesColumnLimit(t *testing.T) {
	v, err := tabular.New([]tabular.Column{
		tabular.CategoricalColumn("a", []string{"x"}, nil),
		tabular.CategoricalColumn("b", []string{"y"}, nil),
		tabular.CategoricalColumn("c", []string{"z"}, nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	top := TopCategories(v, 2, 1)
	if len(top) != 2 {
		t.Errorf("expected 2 columns, got %d", len(top))
	}
	if _, ok := top["c"]; ok {
		t.Error("column past the limit must be skipped")
	}
}

func TestCorrelationMatrix(t *testing.T) {
	// age and height move together on their shared rows.
	v, err := tabular.New([]tabular.Column{
		tabular.NumericColumn("age", []float64{10, 20, 30, 0}, []bool{false, false, false, true}),
		tabular.NumericColumn("height", []float64{140, 150, 160, 170}, nil),
		tabular.CategoricalColumn("city", []string{"A", "B", "A", "C"}, nil),
	})
	if err != nil {
		t.Fatal(err)
	}

	names, matrix := CorrelationMatrix(v)
	if len(names) != 2 {
		t.Fatalf("expected 2 numeric columns, got %v", names)
	}
	if matrix[0][0] != 1 || matrix[1][1] != 1 {
		t.Error("diagonal must be 1")
	}
	if math.Abs(matrix[0][1]-1) > 1e-9 {
		t.Errorf("expected correlation 1 between age and height, got %f", matrix[0][1])
	}
	if matrix[0][1] != matrix[1][0] {
		t.Error("matrix must be symmetric")
	}
}

func TestCorrelationZeroVariance(t *testing.T) {
	v, err := tabular.New([]tabular.Column{
		tabular.NumericColumn("constant", []float64{5, 5, 5}, nil),
		tabular.NumericColumn("x", []float64{1, 2, 3}, nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	_, matrix := CorrelationMatrix(v)
	if matrix[0][1] != 0 {
		t.Errorf("zero-variance pair must correlate 0, got %f", matrix[0][1])
	}
}

func TestFlattenSummary(t *testing.T) {
	header, rows := FlattenSummary(Summarize(sampleView(t)))

	if header[0] != "name" {
		t.Errorf("expected name header first, got %s", header[0])
	}
	found := false
	for _, h := range header {
		if h == "missing_share" {
			found = true
		}
	}
	if !found {
		t.Error("missing_share column absent from flattened summary")
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "age" {
		t.Errorf("expected first row age, got %s", rows[0][0])
	}
	for _, row := range rows {
		if len(row) != len(header) {
			t.Errorf("row width %d does not match header width %d", len(row), len(header))
		}
	}
}
