package heuristics

// Flag names. These are the wire-visible keys of the flags mapping;
// both entry points produce a subset of this set.
const (
	FlagTooFewRows               = "too_few_rows"
	FlagTooManyColumns           = "too_many_columns"
	FlagTooManyMissing           = "too_many_missing"
	FlagNoNumericColumns         = "no_numeric_columns"
	FlagNoCategoricalColumns     = "no_categorical_columns"
	FlagConstantColumns          = "has_constant_columns"
	FlagHighCardinalityCategoric = "has_high_cardinality_categoricals"
	FlagSuspiciousIDDuplicates   = "has_suspicious_id_duplicates"
	FlagManyZeroValues           = "has_many_zero_values"
)

// BasicFlags are the flags computable from aggregate features alone.
var BasicFlags = []string{
	FlagTooFewRows,
	FlagTooManyColumns,
	FlagTooManyMissing,
	FlagNoNumericColumns,
	FlagNoCategoricalColumns,
}

// AllFlags is the full set, in stable display order.
var AllFlags = []string{
	FlagTooFewRows,
	FlagTooManyColumns,
	FlagTooManyMissing,
	FlagNoNumericColumns,
	FlagNoCategoricalColumns,
	FlagConstantColumns,
	FlagHighCardinalityCategoric,
	FlagSuspiciousIDDuplicates,
	FlagManyZeroValues,
}

// Default thresholds. These are the primary tunable surface of the
// engine and are carried by Policy so callers can override them.
const (
	DefaultMinRows              = 100
	DefaultMaxCols              = 200
	DefaultMaxMissingShare      = 0.30
	DefaultMaxCategoricalUnique = 50
	DefaultMaxZeroShare         = 0.30
	DefaultPassScore            = 0.5
)

// Policy is the injectable configuration of the flag engine: the
// threshold table plus the per-flag penalty weights. The engine itself
// carries no compiled-in literals.
type Policy struct {
	MinRows              int     `toml:"min_rows"`
	MaxCols              int     `toml:"max_cols"`
	MaxMissingShare      float64 `toml:"max_missing_share"`
	MaxCategoricalUnique int     `toml:"max_categorical_unique"`
	MaxZeroShare         float64 `toml:"max_zero_share"`

	// PassScore is the minimum quality score considered fit for modeling.
	PassScore float64 `toml:"pass_score"`

	// Penalties maps flag name to the score deduction applied when the
	// flag triggers. Flags absent from the table deduct nothing.
	Penalties map[string]float64 `toml:"penalties"`
}

// DefaultPolicy returns the built-in policy. The penalty weights are a
// calibration surface, not derived constants; adjust them via a policy
// file rather than editing this table.
func DefaultPolicy() Policy {
	return Policy{
		MinRows:              DefaultMinRows,
		MaxCols:              DefaultMaxCols,
		MaxMissingShare:      DefaultMaxMissingShare,
		MaxCategoricalUnique: DefaultMaxCategoricalUnique,
		MaxZeroShare:         DefaultMaxZeroShare,
		PassScore:            DefaultPassScore,
		Penalties: map[string]float64{
			FlagTooFewRows:               0.30,
			FlagTooManyColumns:           0.10,
			FlagTooManyMissing:           0.30,
			FlagNoNumericColumns:         0.20,
			FlagNoCategoricalColumns:     0.10,
			FlagConstantColumns:          0.15,
			FlagHighCardinalityCategoric: 0.10,
			FlagSuspiciousIDDuplicates:   0.25,
			FlagManyZeroValues:           0.10,
		},
	}
}
