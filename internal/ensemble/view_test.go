package ensemble

import "testing"

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in   string
		want ViewMode
		ok   bool
	}{
		{"all", ViewAll, true},
		{"main", ViewMain, true},
		{"avg", ViewAverage, true},
		{"average", ViewAverage, true},
		{"spread", ViewSpread, true},
		{"density", ViewDensity, true},
		{"", "", false},
		{"bogus", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseViewMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseViewMode(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSelectView(t *testing.T) {
	tests := []struct {
		name       string
		mode       ViewMode
		comparison bool
		circular   bool
		want       ViewFields
	}{
		{"all single", ViewAll, false, false, ViewFields{Members: true}},
		{"all comparison falls back to mains", ViewAll, true, false, ViewFields{ModelMains: true}},
		{"main single", ViewMain, false, false, ViewFields{Main: true}},
		{"main comparison", ViewMain, true, false, ViewFields{ModelMains: true}},
		{"avg single", ViewAverage, false, false, ViewFields{Avg: true}},
		{"avg comparison adds model means", ViewAverage, true, false, ViewFields{Avg: true, ModelMeans: true}},
		{"spread single", ViewSpread, false, false, ViewFields{Avg: true, Range: true}},
		{"spread comparison", ViewSpread, true, false, ViewFields{Avg: true, Range: true}},
		{"density single", ViewDensity, false, false, ViewFields{Avg: true, Density: true}},
		{"density circular falls back to members", ViewDensity, false, true, ViewFields{Members: true}},
		{"density comparison", ViewDensity, true, false, ViewFields{Avg: true, Density: true}},
		{"density comparison circular falls back to mains", ViewDensity, true, true, ViewFields{ModelMains: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectView(tt.mode, tt.comparison, tt.circular); got != tt.want {
				t.Errorf("SelectView(%q, %v, %v) = %+v, want %+v",
					tt.mode, tt.comparison, tt.circular, got, tt.want)
			}
		})
	}
}
