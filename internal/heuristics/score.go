package heuristics

// verdict folds the triggered flags into a score and pass decision.
// Each triggered flag deducts its penalty from a baseline of 1.0;
// deductions are independent and the result is clipped to [0,1].
func (e *Engine) verdict(flags Flags, shape Shape, maxMissing float64) Verdict {
	score := 1.0
	for name, on := range flags {
		if on {
			score -= e.policy.Penalties[name]
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Verdict{
		OKForModel:      score >= e.policy.PassScore,
		QualityScore:    score,
		Flags:           flags,
		Shape:           shape,
		MaxMissingShare: maxMissing,
	}
}
