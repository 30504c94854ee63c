package ensemble

// Band is one shaded [low, high] interval of the uncertainty fan.
type Band struct {
	Low  float64
	High float64
}

// DensityBands slices the member distribution into five contiguous bands
// bounded by min, the four quantile cut points, and max. Adjacent bands share
// their endpoints by construction, so the shaded areas tile without gaps or
// overlap. Only meaningful for stats that carry quantiles.
func DensityBands(s Stats) [5]Band {
	return [5]Band{
		{Low: s.Min, High: s.Q20},
		{Low: s.Q20, High: s.Q40},
		{Low: s.Q40, High: s.Q60},
		{Low: s.Q60, High: s.Q80},
		{Low: s.Q80, High: s.Max},
	}
}
