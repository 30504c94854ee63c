package ensemble

import "time"

// Interval is a [start, end] slice of the time axis, both ends inclusive
// sample timestamps.
type Interval struct {
	Start time.Time
	End   time.Time
}

// WeekendIntervals scans the time axis once and returns one interval per
// contiguous run of Saturday/Sunday samples, for weekend shading behind the
// chart. An interval still open at the end of the axis is flushed.
func WeekendIntervals(times []time.Time) []Interval {
	var intervals []Interval
	var open bool
	var current Interval

	for _, ts := range times {
		wd := ts.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			if !open {
				current = Interval{Start: ts}
				open = true
			}
			current.End = ts
			continue
		}
		if open {
			intervals = append(intervals, current)
			open = false
		}
	}
	if open {
		intervals = append(intervals, current)
	}
	return intervals
}

// DayBoundaryTicks returns every axis timestamp falling on local midnight,
// used for day separator lines.
func DayBoundaryTicks(times []time.Time) []time.Time {
	var ticks []time.Time
	for _, ts := range times {
		if ts.Hour() == 0 && ts.Minute() == 0 {
			ticks = append(ticks, ts)
		}
	}
	return ticks
}
