package ensemble

import (
	"time"

	"github.com/gustfront/meteogram/internal/models"
)

// ModelSeries pairs a forecast system with its fetched payload. Slice order is
// the user's selection order.
type ModelSeries struct {
	ModelID string
	Raw     *models.RawSeries
}

// ComparisonRecord is one timestep of cross-model aggregation. Mains holds
// each model's deterministic value (or its lowest-numbered member when no
// deterministic run was published), Means each model's own ensemble mean.
// Stats/Bands aggregate across models, not across members.
type ComparisonRecord struct {
	Time  time.Time
	Mains map[string]float64
	Means map[string]float64
	Stats *Stats
	Bands *[5]Band
}

// modelView caches one model's resolved columns so member discovery runs once
// per model, not once per timestep.
type modelView struct {
	id      string
	raw     *models.RawSeries
	members []MemberColumn
	mainCol string // column carrying the model's representative run
}

// BuildComparison aggregates 2-5 independently fetched models onto the first
// model's time axis. Models are assumed to share the axis (same horizon, same
// step); rows are joined positionally, and the series stops at the shortest
// model rather than indexing past its end. Per timestep the cross-model
// statistics run over each model's main value, falling back to the model's
// member mean when its main has no sample.
func BuildComparison(series []ModelSeries, variable string, units models.Units) []ComparisonRecord {
	if len(series) == 0 || series[0].Raw == nil {
		return nil
	}

	circular := Classify(variable).Circular

	views := make([]modelView, 0, len(series))
	steps := len(series[0].Raw.Time)
	for _, ms := range series {
		if ms.Raw == nil {
			continue
		}
		v := modelView{id: ms.ModelID, raw: ms.Raw, members: ResolveMembers(ms.Raw, variable)}
		for _, m := range v.members {
			// members are ordered main-first, then ascending; the first
			// entry is the best available representative run
			v.mainCol = m.Column
			break
		}
		views = append(views, v)
		if len(ms.Raw.Time) < steps {
			steps = len(ms.Raw.Time)
		}
	}
	if len(views) == 0 {
		return nil
	}

	records := make([]ComparisonRecord, 0, steps)
	for i := 0; i < steps; i++ {
		rec := ComparisonRecord{
			Time:  series[0].Raw.Time[i],
			Mains: make(map[string]float64, len(views)),
			Means: make(map[string]float64, len(views)),
		}

		values := make([]float64, 0, len(views))
		for _, v := range views {
			main, hasMain := memberValueAt(v.raw, v.mainCol, i, variable, units)
			if hasMain {
				rec.Mains[v.id] = main
			}

			memberValues := make([]float64, 0, len(v.members))
			for _, m := range v.members {
				if val, ok := memberValueAt(v.raw, m.Column, i, variable, units); ok {
					memberValues = append(memberValues, val)
				}
			}
			var mean float64
			var hasMean bool
			if circular {
				if s, ok := CircularStats(memberValues); ok {
					mean, hasMean = s.Mean, true
				}
			} else if s, ok := ScalarStats(memberValues); ok {
				mean, hasMean = s.Mean, true
			}
			if hasMean {
				rec.Means[v.id] = mean
			}

			switch {
			case hasMain:
				values = append(values, main)
			case hasMean:
				values = append(values, mean)
			}
		}

		if circular {
			if s, ok := CircularStats(values); ok {
				rec.Stats = &s
			}
		} else if s, ok := ScalarStats(values); ok {
			rec.Stats = &s
			bands := DensityBands(s)
			rec.Bands = &bands
		}

		records = append(records, rec)
	}
	return records
}

func memberValueAt(raw *models.RawSeries, column string, i int, variable string, units models.Units) (float64, bool) {
	if column == "" {
		return 0, false
	}
	col := raw.Columns[column]
	if i >= len(col) || col[i] == nil {
		return 0, false
	}
	return Convert(*col[i], variable, units), true
}
