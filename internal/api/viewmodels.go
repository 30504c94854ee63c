package api

import (
	"fmt"
	"time"

	"github.com/gustfront/meteogram/internal/ensemble"
)

const wireTimeLayout = "2006-01-02T15:04"

type seriesResponse struct {
	Variable  string              `json:"variable"`
	Model     string              `json:"model"`
	UnitLabel string              `json:"unitLabel"`
	Circular  bool                `json:"circular"`
	View      ensemble.ViewFields `json:"view"`
	Records   []map[string]any    `json:"records"`
	Weekends  []intervalVM        `json:"weekends"`
	DayTicks  []string            `json:"dayTicks"`
}

type compareResponse struct {
	Variable  string              `json:"variable"`
	Models    []string            `json:"models"`
	UnitLabel string              `json:"unitLabel"`
	Circular  bool                `json:"circular"`
	View      ensemble.ViewFields `json:"view"`
	Records   []map[string]any    `json:"records"`
	Weekends  []intervalVM        `json:"weekends"`
	DayTicks  []string            `json:"dayTicks"`
}

type intervalVM struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// seriesViewModel flattens point records into the wire shape the chart reads:
// per-member keys ("main", "member0", ...) beside the derived aggregates.
// Absent aggregates stay absent rather than encoding as zeros.
func seriesViewModel(records []ensemble.PointRecord) []map[string]any {
	vms := make([]map[string]any, 0, len(records))
	for _, r := range records {
		vm := map[string]any{"time": r.Time.Format(wireTimeLayout)}
		for key, v := range r.Members {
			vm[key] = v
		}
		attachStats(vm, r.Stats, r.Bands)
		vms = append(vms, vm)
	}
	return vms
}

// comparisonViewModel keys each model's main as "<modelId>_main" and its own
// ensemble mean as "<modelId>", beside the cross-model aggregates.
func comparisonViewModel(records []ensemble.ComparisonRecord) []map[string]any {
	vms := make([]map[string]any, 0, len(records))
	for _, r := range records {
		vm := map[string]any{"time": r.Time.Format(wireTimeLayout)}
		for id, v := range r.Mains {
			vm[id+"_main"] = v
		}
		for id, v := range r.Means {
			vm[id] = v
		}
		attachStats(vm, r.Stats, r.Bands)
		vms = append(vms, vm)
	}
	return vms
}

func attachStats(vm map[string]any, s *ensemble.Stats, bands *[5]ensemble.Band) {
	if s == nil {
		return
	}
	vm["avg"] = s.Mean
	vm["min"] = s.Min
	vm["max"] = s.Max
	vm["range"] = [2]float64{s.Min, s.Max}
	if s.HasQuantiles {
		vm["q20"] = s.Q20
		vm["q40"] = s.Q40
		vm["q60"] = s.Q60
		vm["q80"] = s.Q80
	}
	if bands != nil {
		for i, b := range bands {
			vm[fmt.Sprintf("density%d", i+1)] = [2]float64{b.Low, b.High}
		}
	}
}

func intervalsViewModel(intervals []ensemble.Interval) []intervalVM {
	vms := make([]intervalVM, 0, len(intervals))
	for _, iv := range intervals {
		vms = append(vms, intervalVM{
			Start: iv.Start.Format(wireTimeLayout),
			End:   iv.End.Format(wireTimeLayout),
		})
	}
	return vms
}

func ticksViewModel(ticks []time.Time) []string {
	vms := make([]string, 0, len(ticks))
	for _, t := range ticks {
		vms = append(vms, t.Format(wireTimeLayout))
	}
	return vms
}
