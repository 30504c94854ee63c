package ensemble

import (
	"testing"
	"time"
)

func hourlyAxis(start time.Time, days int) []time.Time {
	times := make([]time.Time, 0, days*24)
	for i := 0; i < days*24; i++ {
		times = append(times, start.Add(time.Duration(i)*time.Hour))
	}
	return times
}

func TestWeekendIntervalsTwoFullWeekends(t *testing.T) {
	// Monday 2026-08-17 for 14 days spans the weekends of Aug 22-23 and 29-30.
	start := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	times := hourlyAxis(start, 14)

	intervals := WeekendIntervals(times)
	if len(intervals) != 2 {
		t.Fatalf("len(intervals) = %d, want 2", len(intervals))
	}

	wantStarts := []time.Time{
		time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}
	wantEnds := []time.Time{
		time.Date(2026, 8, 23, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC),
	}
	for i := range intervals {
		if !intervals[i].Start.Equal(wantStarts[i]) {
			t.Errorf("interval %d start = %v, want %v", i, intervals[i].Start, wantStarts[i])
		}
		if !intervals[i].End.Equal(wantEnds[i]) {
			t.Errorf("interval %d end = %v, want %v", i, intervals[i].End, wantEnds[i])
		}
	}
}

func TestWeekendIntervalsOpenAtAxisEnd(t *testing.T) {
	// Axis ends mid-Saturday; the open interval must still be flushed.
	start := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC) // Friday
	times := hourlyAxis(start, 1)
	times = append(times, hourlyAxis(start.AddDate(0, 0, 1), 1)[:12]...)

	intervals := WeekendIntervals(times)
	if len(intervals) != 1 {
		t.Fatalf("len(intervals) = %d, want 1", len(intervals))
	}
	wantEnd := time.Date(2026, 8, 22, 11, 0, 0, 0, time.UTC)
	if !intervals[0].End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", intervals[0].End, wantEnd)
	}
}

func TestWeekendIntervalsNoWeekend(t *testing.T) {
	start := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC) // Monday
	times := hourlyAxis(start, 4)                         // Mon-Thu

	if got := WeekendIntervals(times); len(got) != 0 {
		t.Errorf("intervals = %v, want none", got)
	}
	if got := WeekendIntervals(nil); len(got) != 0 {
		t.Errorf("intervals over empty axis = %v, want none", got)
	}
}

func TestDayBoundaryTicks(t *testing.T) {
	start := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	times := hourlyAxis(start, 3)

	ticks := DayBoundaryTicks(times)
	if len(ticks) != 3 {
		t.Fatalf("len(ticks) = %d, want 3", len(ticks))
	}
	for i, tick := range ticks {
		want := start.AddDate(0, 0, i)
		if !tick.Equal(want) {
			t.Errorf("tick %d = %v, want %v", i, tick, want)
		}
	}
}

func TestDayBoundaryTicksRespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	times := []time.Time{
		time.Date(2026, 8, 17, 0, 0, 0, 0, loc),  // local midnight
		time.Date(2026, 8, 17, 22, 0, 0, 0, loc), // UTC midnight, not local
	}

	ticks := DayBoundaryTicks(times)
	if len(ticks) != 1 {
		t.Fatalf("len(ticks) = %d, want 1 (local midnight only)", len(ticks))
	}
	if !ticks[0].Equal(times[0]) {
		t.Errorf("tick = %v, want %v", ticks[0], times[0])
	}
}
