package scoring

// Resolve maps a raw measured value to the criterion's 0-10 score.
// A nil raw value means N/A and propagates as nil without touching the
// mapping table. Values outside the criterion's covered domain clamp to
// the nearest boundary range rather than erroring.
//
// Resolve assumes the criterion passed catalog validation: mappings are
// non-empty, sorted ascending by Min, and contiguous.
func Resolve(c Criterion, raw *float64) *float64 {
	if raw == nil {
		return nil
	}
	v := *raw

	first := c.Mappings[0]
	if v < first.Min {
		s := first.Score.AtMin
		return &s
	}

	for _, m := range c.Mappings {
		if v >= m.Min && (v < m.Max || m.Unbounded()) {
			s := m.at(v)
			return &s
		}
	}

	// At or above the last bounded range's max: clamp to its upper score.
	last := c.Mappings[len(c.Mappings)-1]
	s := last.Score.AtMax
	return &s
}

// at evaluates the mapping's score at v, which must lie within [Min, Max).
func (m ScoreMapping) at(v float64) float64 {
	if !m.Score.Interpolate {
		return m.Score.AtMin
	}
	frac := (v - m.Min) / (m.Max - m.Min)
	return m.Score.AtMin + frac*(m.Score.AtMax-m.Score.AtMin)
}
