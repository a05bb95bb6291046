package profiler

import (
	"math"
	"testing"

	"github.com/peekknuf/modelfit/internal/tabular"
)

func sampleView(t *testing.T) *tabular.View {
	t.Helper()
	v, err := tabular.New([]tabular.Column{
		tabular.NumericColumn("age", []float64{10, 20, 30, 0}, []bool{false, false, false, true}),
		tabular.NumericColumn("height", []float64{140, 150, 160, 170}, nil),
		tabular.CategoricalColumn("city", []string{"A", "B", "A", ""}, []bool{false, false, false, true}),
	})
	if err != nil {
		t.Fatalf("building view: %v", err)
	}
	return v
}

func TestProfileNumericColumn(t *testing.T) {
	c := tabular.NumericColumn("age", []float64{10, 20, 30, 0}, []bool{false, false, false, true})
	p := ProfileColumn(c)

	if p.MissingCount != 1 {
		t.Errorf("expected 1 missing, got %d", p.MissingCount)
	}
	if p.NonNullCount != 3 {
		t.Errorf("expected 3 non-null, got %d", p.NonNullCount)
	}
	if math.Abs(p.MissingShare-0.25) > 1e-9 {
		t.Errorf("expected missing share 0.25, got %f", p.MissingShare)
	}
	if p.UniqueCount != 3 {
		t.Errorf("expected 3 unique, got %d", p.UniqueCount)
	}
	if p.Numeric == nil {
		t.Fatal("expected numeric stats")
	}
	if p.Numeric.Min != 10 || p.Numeric.Max != 30 {
		t.Errorf("expected min 10 max 30, got %f %f", p.Numeric.Min, p.Numeric.Max)
	}
	if math.Abs(p.Numeric.Mean-20) > 1e-9 {
		t.Errorf("expected mean 20, got %f", p.Numeric.Mean)
	}
	if math.Abs(p.Numeric.Std-10) > 1e-9 {
		t.Errorf("expected sample std 10, got %f", p.Numeric.Std)
	}
}

func TestProfileSampleStd(t *testing.T) {
	c := tabular.NumericColumn("height", []float64{140, 150, 160, 170}, nil)
	p := ProfileColumn(c)

	want := math.Sqrt(500.0 / 3.0)
	if math.Abs(p.Numeric.Std-want) > 1e-6 {
		t.Errorf("expected std %f, got %f", want, p.Numeric.Std)
	}
}

func TestProfileStdDegenerate(t *testing.T) {
	single := ProfileColumn(tabular.NumericColumn("x", []float64{42}, nil))
	if single.Numeric == nil || single.Numeric.Std != 0 {
		t.Error("std of a single observation must be 0")
	}
}

func TestProfileAllMissingNumeric(t *testing.T) {
	c := tabular.NumericColumn("x", []float64{0, 0}, []bool{true, true})
	p := ProfileColumn(c)

	if p.NonNullCount != 0 || p.MissingCount != 2 {
		t.Errorf("unexpected counts: non-null %d missing %d", p.NonNullCount, p.MissingCount)
	}
	if p.Numeric != nil {
		t.Error("numeric stats must be absent when all values are missing")
	}
	if p.UniqueCount != 0 {
		t.Errorf("expected 0 unique, got %d", p.UniqueCount)
	}
	if p.MissingShare != 1 {
		t.Errorf("expected missing share 1, got %f", p.MissingShare)
	}
}

func TestProfileCategoricalColumn(t *testing.T) {
	c := tabular.CategoricalColumn("city", []string{"A", "B", "A", ""}, []bool{false, false, false, true})
	p := ProfileColumn(c)

	if p.UniqueCount != 2 {
		t.Errorf("expected 2 unique, got %d", p.UniqueCount)
	}
	if p.Numeric != nil {
		t.Error("categorical profile must not carry numeric stats")
	}
}

func TestExampleValuesFirstSeenOrder(t *testing.T) {
	c := tabular.CategoricalColumn("s",
		[]string{"c", "a", "c", "b", "d", "a"},
		[]bool{false, false, false, false, false, false})
	p := ProfileColumn(c)

	want := []string{"c", "a", "b"}
	if len(p.ExampleValues) != 3 {
		t.Fatalf("expected 3 example values, got %d", len(p.ExampleValues))
	}
	for i, v := range want {
		if p.ExampleValues[i] != v {
			t.Errorf("example value %d: expected %q, got %q", i, v, p.ExampleValues[i])
		}
	}
}

func TestExampleValuesFewerThanThree(t *testing.T) {
	c := tabular.CategoricalColumn("s", []string{"x", "x"}, nil)
	p := ProfileColumn(c)
	if len(p.ExampleValues) != 1 || p.ExampleValues[0] != "x" {
		t.Errorf("expected single example value x, got %v", p.ExampleValues)
	}
}

func TestZeroCount(t *testing.T) {
	c := tabular.NumericColumn("sparse", []float64{0, 0, 0, 1, 2}, nil)
	p := ProfileColumn(c)
	if p.Numeric.ZeroCount != 3 {
		t.Errorf("expected 3 zeroes, got %d", p.Numeric.ZeroCount)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleView(t))

	if s.NumRows != 4 {
		t.Errorf("expected 4 rows, got %d", s.NumRows)
	}
	if s.NumCols != 3 {
		t.Errorf("expected 3 cols, got %d", s.NumCols)
	}
	if len(s.Columns) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(s.Columns))
	}
	if s.Columns[0].Name != "age" || s.Columns[1].Name != "height" || s.Columns[2].Name != "city" {
		t.Error("profile order must mirror column order")
	}
	if math.Abs(s.MaxMissingShare-0.25) > 1e-9 {
		t.Errorf("expected max missing share 0.25, got %f", s.MaxMissingShare)
	}
}

func TestSummarizeEmptyView(t *testing.T) {
	v, err := tabular.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(v)
	if s.MaxMissingShare != 0 {
		t.Errorf("empty dataset must have max missing share 0, got %f", s.MaxMissingShare)
	}
	if s.NumRows != 0 || s.NumCols != 0 {
		t.Errorf("expected 0x0 summary, got %dx%d", s.NumRows, s.NumCols)
	}
}
