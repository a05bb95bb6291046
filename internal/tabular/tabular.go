package tabular

import "strconv"

// Kind is the declared type of a column, decided once by whatever reader
// produced the view. The core never re-infers it.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column is one named value sequence with an explicit missing mask.
// Values[i] is meaningful only where Missing[i] is false. For Numeric
// columns Floats holds the parsed value at the same positions; Values
// then carries the canonical string form for display.
type Column struct {
	Name    string
	Kind    Kind
	Values  []string
	Floats  []float64
	Missing []bool
}

// NumericColumn builds a numeric column from parsed values.
func NumericColumn(name string, values []float64, missing []bool) Column {
	display := make([]string, len(values))
	for i, v := range values {
		if i < len(missing) && missing[i] {
			continue
		}
		display[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return Column{Name: name, Kind: Numeric, Values: display, Floats: values, Missing: missing}
}

// CategoricalColumn builds a categorical column from raw string values.
func CategoricalColumn(name string, values []string, missing []bool) Column {
	return Column{Name: name, Kind: Categorical, Values: values, Missing: missing}
}

func (c Column) Len() int {
	return len(c.Values)
}

// IsMissing reports whether row i is masked out.
func (c Column) IsMissing(i int) bool {
	return i < len(c.Missing) && c.Missing[i]
}

// View is a read-only rectangular dataset: ordered named columns of
// equal length. It is the only shape the quality core accepts.
type View struct {
	columns []Column
	rows    int
}

// New validates that all columns agree in length and wraps them in a
// View. A length disagreement is the caller's bug, reported as
// InvalidInputError rather than silently truncated.
func New(columns []Column) (*View, error) {
	rows := 0
	if len(columns) > 0 {
		rows = columns[0].Len()
	}
	for _, c := range columns {
		if c.Len() != rows {
			return nil, Invalidf("column %q has %d rows, expected %d", c.Name, c.Len(), rows)
		}
		if len(c.Missing) != 0 && len(c.Missing) != rows {
			return nil, Invalidf("column %q has a missing mask of length %d, expected %d", c.Name, len(c.Missing), rows)
		}
	}
	return &View{columns: columns, rows: rows}, nil
}

func (v *View) NumRows() int { return v.rows }

func (v *View) NumCols() int { return len(v.columns) }

// Columns returns the columns in their original order.
func (v *View) Columns() []Column { return v.columns }
