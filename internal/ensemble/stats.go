package ensemble

import (
	"math"
	"sort"
)

// Stats holds the per-timestep aggregates over the member values present at
// that timestep. Quantile cut points are only set for scalar variables.
type Stats struct {
	Mean float64
	Min  float64
	Max  float64

	Q20, Q40, Q60, Q80 float64
	HasQuantiles       bool
}

// ScalarStats aggregates the non-null member values of one timestep.
// ok is false for an empty input: a timestep with no valid samples carries no
// aggregates at all rather than zeros. Quantiles are nearest-rank
// (sorted[floor(p*(n-1))]) so they coincide with actual member values and the
// density band edges meet without seams.
func ScalarStats(values []float64) (Stats, bool) {
	if len(values) == 0 {
		return Stats{}, false
	}

	s := Stats{Min: values[0], Max: values[0]}
	var sum float64
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Q20 = nearestRank(sorted, 0.2)
	s.Q40 = nearestRank(sorted, 0.4)
	s.Q60 = nearestRank(sorted, 0.6)
	s.Q80 = nearestRank(sorted, 0.8)
	s.HasQuantiles = true
	return s, true
}

func nearestRank(sorted []float64, p float64) float64 {
	idx := int(math.Floor(p * float64(len(sorted)-1)))
	return sorted[idx]
}

// CircularStats aggregates angular member values in degrees. The mean is the
// vector (circular) mean, normalized to [0, 360), which avoids the linear
// averaging error near the wrap point (e.g. {350, 10} averages to 0, not 180).
// Min/max are linear over the raw degrees; across the 0/360 boundary they
// overstate the spread, a known caveat of the range band. With a zero
// resultant vector (fully opposed members) atan2(0, 0) yields a deterministic
// 0 degrees. No quantiles are produced for circular variables.
func CircularStats(degrees []float64) (Stats, bool) {
	if len(degrees) == 0 {
		return Stats{}, false
	}

	s := Stats{Min: degrees[0], Max: degrees[0]}
	var sinSum, cosSum float64
	for _, d := range degrees {
		rad := d * math.Pi / 180
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}

	n := float64(len(degrees))
	mean := math.Atan2(sinSum/n, cosSum/n) * 180 / math.Pi
	if mean < 0 {
		mean += 360
	}
	s.Mean = mean
	return s, true
}
