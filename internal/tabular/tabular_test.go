package tabular

import "testing"

func TestNewValidatesColumnLengths(t *testing.T) {
	cols := []Column{
		CategoricalColumn("a", []string{"x", "y"}, []bool{false, false}),
		CategoricalColumn("b", []string{"z"}, []bool{false}),
	}

	if _, err := New(cols); err == nil {
		t.Fatal("expected error for ragged columns")
	} else if !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestNewEmptyView(t *testing.T) {
	v, err := New(nil)
	if err != nil {
		t.Fatalf("New() failed on empty input: %v", err)
	}
	if v.NumRows() != 0 || v.NumCols() != 0 {
		t.Errorf("expected 0x0 view, got %dx%d", v.NumRows(), v.NumCols())
	}
}

func TestNumericColumnDisplayValues(t *testing.T) {
	c := NumericColumn("x", []float64{1.5, 0, 3}, []bool{false, true, false})

	if c.Len() != 3 {
		t.Fatalf("expected length 3, got %d", c.Len())
	}
	if c.Values[0] != "1.5" {
		t.Errorf("expected display value 1.5, got %q", c.Values[0])
	}
	if !c.IsMissing(1) {
		t.Error("expected row 1 to be missing")
	}
	if c.Values[1] != "" {
		t.Errorf("missing row should have empty display value, got %q", c.Values[1])
	}
}

func TestViewShape(t *testing.T) {
	cols := []Column{
		NumericColumn("age", []float64{10, 20}, []bool{false, false}),
		CategoricalColumn("city", []string{"A", "B"}, []bool{false, false}),
	}
	v, err := New(cols)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if v.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", v.NumRows())
	}
	if v.NumCols() != 2 {
		t.Errorf("expected 2 cols, got %d", v.NumCols())
	}
	if v.Columns()[0].Name != "age" || v.Columns()[1].Name != "city" {
		t.Error("column order not preserved")
	}
}
