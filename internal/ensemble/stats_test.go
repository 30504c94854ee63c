package ensemble

import (
	"math"
	"testing"
)

func TestScalarStatsEmpty(t *testing.T) {
	if _, ok := ScalarStats(nil); ok {
		t.Error("ScalarStats(nil) ok = true, want false")
	}
	if _, ok := ScalarStats([]float64{}); ok {
		t.Error("ScalarStats(empty) ok = true, want false")
	}
}

func TestScalarStatsSingleValue(t *testing.T) {
	s, ok := ScalarStats([]float64{7.5})
	if !ok {
		t.Fatal("ok = false")
	}
	for name, got := range map[string]float64{
		"Mean": s.Mean, "Min": s.Min, "Max": s.Max,
		"Q20": s.Q20, "Q40": s.Q40, "Q60": s.Q60, "Q80": s.Q80,
	} {
		if got != 7.5 {
			t.Errorf("%s = %v, want 7.5", name, got)
		}
	}
}

func TestScalarStats(t *testing.T) {
	// 11 values so the nearest-rank indexes land exactly on 2, 4, 6, 8
	values := []float64{10, 0, 6, 2, 8, 4, 7, 1, 9, 3, 5}

	s, ok := ScalarStats(values)
	if !ok {
		t.Fatal("ok = false")
	}
	if s.Mean != 5 {
		t.Errorf("Mean = %v, want 5", s.Mean)
	}
	if s.Min != 0 || s.Max != 10 {
		t.Errorf("Min/Max = %v/%v, want 0/10", s.Min, s.Max)
	}
	if s.Q20 != 2 || s.Q40 != 4 || s.Q60 != 6 || s.Q80 != 8 {
		t.Errorf("quantiles = %v/%v/%v/%v, want 2/4/6/8", s.Q20, s.Q40, s.Q60, s.Q80)
	}
}

func TestScalarStatsQuantileOrdering(t *testing.T) {
	inputs := [][]float64{
		{1},
		{3, 1},
		{5, 1, 4, 2, 3},
		{2.5, -1, 0, 7.25, 3, 3, 3},
		{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	}

	for _, values := range inputs {
		s, ok := ScalarStats(values)
		if !ok {
			t.Fatalf("ok = false for %v", values)
		}
		ordered := []float64{s.Min, s.Q20, s.Q40, s.Q60, s.Q80, s.Max}
		for i := 1; i < len(ordered); i++ {
			if ordered[i] < ordered[i-1] {
				t.Errorf("cut points out of order for %v: %v", values, ordered)
			}
		}
		if s.Mean < s.Min || s.Mean > s.Max {
			t.Errorf("mean %v outside [%v, %v]", s.Mean, s.Min, s.Max)
		}
	}
}

func TestDensityBandsContiguous(t *testing.T) {
	s, ok := ScalarStats([]float64{10, 0, 6, 2, 8, 4, 7, 1, 9, 3, 5})
	if !ok {
		t.Fatal("ok = false")
	}

	bands := DensityBands(s)
	if bands[0].Low != s.Min {
		t.Errorf("bands[0].Low = %v, want min %v", bands[0].Low, s.Min)
	}
	if bands[4].High != s.Max {
		t.Errorf("bands[4].High = %v, want max %v", bands[4].High, s.Max)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Low != bands[i-1].High {
			t.Errorf("band %d.Low = %v, band %d.High = %v; bands must share endpoints",
				i, bands[i].Low, i-1, bands[i-1].High)
		}
	}
	if bands[0].High != s.Q20 || bands[1].High != s.Q40 || bands[2].High != s.Q60 || bands[3].High != s.Q80 {
		t.Errorf("band highs = %v/%v/%v/%v, want %v/%v/%v/%v",
			bands[0].High, bands[1].High, bands[2].High, bands[3].High, s.Q20, s.Q40, s.Q60, s.Q80)
	}
}

func TestCircularStatsWrapAround(t *testing.T) {
	// Linear averaging would give 180, the exact error this exists to avoid.
	s, ok := CircularStats([]float64{350, 10})
	if !ok {
		t.Fatal("ok = false")
	}
	if math.Abs(s.Mean) > 1e-9 && math.Abs(s.Mean-360) > 1e-9 {
		t.Errorf("Mean = %v, want 0", s.Mean)
	}
	if s.Min != 10 || s.Max != 350 {
		t.Errorf("Min/Max = %v/%v, want linear 10/350", s.Min, s.Max)
	}
	if s.HasQuantiles {
		t.Error("HasQuantiles = true for circular stats")
	}
}

func TestCircularStatsSimple(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"identical", []float64{90, 90, 90}, 90},
		{"symmetric around north", []float64{45, 315}, 0},
		{"symmetric around south", []float64{135, 225}, 180},
		{"quarter turn", []float64{0, 90}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := CircularStats(tt.in)
			if !ok {
				t.Fatal("ok = false")
			}
			diff := math.Abs(s.Mean - tt.want)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1e-9 {
				t.Errorf("Mean = %v, want %v", s.Mean, tt.want)
			}
		})
	}
}

func TestCircularStatsZeroResultant(t *testing.T) {
	// Fully opposed members cancel to a zero vector; the mean must stay
	// deterministic (atan2(0,0) = 0) rather than panic or drift.
	for i := 0; i < 10; i++ {
		s, ok := CircularStats([]float64{0, 90, 180, 270})
		if !ok {
			t.Fatal("ok = false")
		}
		if math.IsNaN(s.Mean) {
			t.Fatal("Mean is NaN")
		}
		if s.Mean != 0 {
			t.Errorf("Mean = %v, want deterministic 0", s.Mean)
		}
	}
}

func TestCircularStatsNormalizedRange(t *testing.T) {
	inputs := [][]float64{
		{359, 1}, {180}, {270, 271}, {0}, {90, 180}, {300, 350, 20},
	}
	for _, in := range inputs {
		s, ok := CircularStats(in)
		if !ok {
			t.Fatalf("ok = false for %v", in)
		}
		if s.Mean < 0 || s.Mean >= 360 {
			t.Errorf("Mean(%v) = %v, want within [0, 360)", in, s.Mean)
		}
	}
}

func TestCircularStatsEmpty(t *testing.T) {
	if _, ok := CircularStats(nil); ok {
		t.Error("CircularStats(nil) ok = true, want false")
	}
}
