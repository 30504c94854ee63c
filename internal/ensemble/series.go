package ensemble

import (
	"time"

	"github.com/gustfront/meteogram/internal/models"
)

// PointRecord is one timestep of a built series: the converted value of every
// member present at that timestep plus the derived aggregates. Stats and Bands
// are nil when the timestep had no valid samples; Bands is also nil for
// circular variables.
type PointRecord struct {
	Time    time.Time
	Members map[string]float64
	Stats   *Stats
	Bands   *[5]Band
}

// BuildSeries runs the single-model pipeline: member resolution, unit
// conversion, then scalar or circular statistics and density bands depending
// on the variable. It guarantees one record per input timestep, in input
// order, even when every member value is null.
func BuildSeries(raw *models.RawSeries, variable string, units models.Units) []PointRecord {
	if raw == nil {
		return nil
	}

	members := ResolveMembers(raw, variable)
	circular := Classify(variable).Circular

	records := make([]PointRecord, 0, len(raw.Time))
	for i, ts := range raw.Time {
		rec := PointRecord{Time: ts, Members: make(map[string]float64, len(members))}

		values := make([]float64, 0, len(members))
		for _, m := range members {
			col := raw.Columns[m.Column]
			if i >= len(col) || col[i] == nil {
				continue
			}
			v := Convert(*col[i], variable, units)
			rec.Members[m.RecordKey()] = v
			values = append(values, v)
		}

		if circular {
			if s, ok := CircularStats(values); ok {
				rec.Stats = &s
			}
		} else {
			if s, ok := ScalarStats(values); ok {
				rec.Stats = &s
				bands := DensityBands(s)
				rec.Bands = &bands
			}
		}

		records = append(records, rec)
	}
	return records
}
