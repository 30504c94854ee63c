package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gustfront/meteogram/internal/ensemble"
	"github.com/gustfront/meteogram/internal/ingest"
	"github.com/gustfront/meteogram/internal/metrics"
	"github.com/gustfront/meteogram/internal/models"
)

// Daily payloads carry per-day aggregates; requesting one on the hourly axis
// would silently produce an empty series, so it is rejected up front. The
// engine itself has no defense against this.
var dailyOnlySuffixes = []string{"_max", "_min", "_sum", "_mean", "_hours"}

func isDailyOnlyVariable(variable string) bool {
	for _, suffix := range dailyOnlySuffixes {
		if strings.HasSuffix(variable, suffix) {
			return true
		}
	}
	return variable == "sunshine_duration" || variable == "daylight_duration"
}

// unitsFromQuery starts from the stored preferences and applies any per-request
// unit overrides, so a unit toggle takes effect without a preference write.
func unitsFromQuery(base models.Units, q url.Values) models.Units {
	if v := q.Get("temperature_unit"); v != "" {
		base.Temperature = v
	}
	if v := q.Get("wind_speed_unit"); v != "" {
		base.WindSpeed = v
	}
	if v := q.Get("precipitation_unit"); v != "" {
		base.Precipitation = v
	}
	if v := q.Get("pressure_unit"); v != "" {
		base.Pressure = v
	}
	return base
}

func (s *Server) fetchOptions(granularity string) ingest.FetchOptions {
	return ingest.FetchOptions{
		Latitude:     s.site.Latitude,
		Longitude:    s.site.Longitude,
		Granularity:  granularity,
		ForecastDays: s.site.ForecastDays,
	}
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	variable := q.Get("variable")
	if variable == "" {
		http.Error(w, "variable parameter required", http.StatusBadRequest)
		return
	}

	granularity := q.Get("granularity")
	if granularity == "" {
		granularity = "hourly"
	}
	if granularity != "hourly" && granularity != "daily" {
		http.Error(w, "granularity must be hourly or daily", http.StatusBadRequest)
		return
	}
	if granularity == "hourly" && isDailyOnlyVariable(variable) {
		http.Error(w, "variable is only available at daily granularity", http.StatusBadRequest)
		return
	}

	prefs, err := s.store.GetPreferences()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	units := unitsFromQuery(prefs.Units, q)

	modelID := q.Get("model")
	if modelID == "" && len(prefs.Models) > 0 {
		modelID = prefs.Models[0]
	}
	if !models.KnownModel(modelID) {
		http.Error(w, "unknown model", http.StatusBadRequest)
		return
	}

	viewMode, ok := ensemble.ParseViewMode(q.Get("view"))
	if !ok {
		if viewMode, ok = ensemble.ParseViewMode(prefs.ViewMode); !ok {
			viewMode = ensemble.ViewDensity
		}
	}

	payloads, err := s.fetcher.FetchModels(r.Context(), []string{modelID}, []string{variable}, s.fetchOptions(granularity))
	if err != nil {
		writeFetchError(w, err)
		return
	}

	raw := payloads[0].Raw
	records := ensemble.BuildSeries(raw, variable, units)
	metrics.SeriesBuiltTotal.WithLabelValues("single").Inc()

	circular := ensemble.Classify(variable).Circular
	resp := seriesResponse{
		Variable:  variable,
		Model:     modelID,
		UnitLabel: ensemble.UnitLabel(variable, units),
		Circular:  circular,
		View:      ensemble.SelectView(viewMode, false, circular),
		Records:   seriesViewModel(records),
		Weekends:  intervalsViewModel(ensemble.WeekendIntervals(raw.Time)),
		DayTicks:  ticksViewModel(ensemble.DayBoundaryTicks(raw.Time)),
	}
	writeJSON(w, resp)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	variable := q.Get("variable")
	if variable == "" {
		http.Error(w, "variable parameter required", http.StatusBadRequest)
		return
	}

	granularity := q.Get("granularity")
	if granularity == "" {
		granularity = "hourly"
	}
	if granularity == "hourly" && isDailyOnlyVariable(variable) {
		http.Error(w, "variable is only available at daily granularity", http.StatusBadRequest)
		return
	}

	prefs, err := s.store.GetPreferences()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	units := unitsFromQuery(prefs.Units, q)

	modelIDs := prefs.Models
	if v := q.Get("models"); v != "" {
		modelIDs = strings.Split(v, ",")
	}
	if len(modelIDs) < models.MinComparisonModels || len(modelIDs) > models.MaxComparisonModels {
		http.Error(w, "comparison requires between 2 and 5 models", http.StatusBadRequest)
		return
	}
	for _, id := range modelIDs {
		if !models.KnownModel(id) {
			http.Error(w, "unknown model: "+id, http.StatusBadRequest)
			return
		}
	}

	viewMode, ok := ensemble.ParseViewMode(q.Get("view"))
	if !ok {
		if viewMode, ok = ensemble.ParseViewMode(prefs.ViewMode); !ok {
			viewMode = ensemble.ViewDensity
		}
	}

	payloads, err := s.fetcher.FetchModels(r.Context(), modelIDs, []string{variable}, s.fetchOptions(granularity))
	if err != nil {
		writeFetchError(w, err)
		return
	}

	series := make([]ensemble.ModelSeries, len(payloads))
	for i, p := range payloads {
		series[i] = ensemble.ModelSeries{ModelID: p.ModelID, Raw: p.Raw}
	}
	records := ensemble.BuildComparison(series, variable, units)
	metrics.SeriesBuiltTotal.WithLabelValues("comparison").Inc()

	circular := ensemble.Classify(variable).Circular
	resp := compareResponse{
		Variable:  variable,
		Models:    modelIDs,
		UnitLabel: ensemble.UnitLabel(variable, units),
		Circular:  circular,
		View:      ensemble.SelectView(viewMode, true, circular),
		Records:   comparisonViewModel(records),
		Weekends:  intervalsViewModel(ensemble.WeekendIntervals(payloads[0].Raw.Time)),
		DayTicks:  ticksViewModel(ensemble.DayBoundaryTicks(payloads[0].Raw.Time)),
	}
	writeJSON(w, resp)
}

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		prefs, err := s.store.GetPreferences()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, prefs)

	case http.MethodPut, http.MethodPost:
		var prefs models.Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			http.Error(w, "invalid preferences payload", http.StatusBadRequest)
			return
		}
		for _, id := range prefs.Models {
			if !models.KnownModel(id) {
				http.Error(w, "unknown model: "+id, http.StatusBadRequest)
				return
			}
		}
		if prefs.ViewMode != "" {
			if _, ok := ensemble.ParseViewMode(prefs.ViewMode); !ok {
				http.Error(w, "unknown view mode: "+prefs.ViewMode, http.StatusBadRequest)
				return
			}
		}
		if err := s.store.SavePreferences(prefs); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, prefs)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	type modelVM struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	vms := make([]modelVM, 0, len(models.EnsembleModels))
	for _, m := range models.EnsembleModels {
		vms = append(vms, modelVM{ID: m.ID, Name: m.Name})
	}
	writeJSON(w, vms)
}

func writeFetchError(w http.ResponseWriter, err error) {
	if errors.Is(err, ingest.ErrSuperseded) {
		http.Error(w, "request superseded by a newer configuration", http.StatusConflict)
		return
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
