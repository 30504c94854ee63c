package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gustfront/meteogram/internal/httputil"
	"github.com/gustfront/meteogram/internal/metrics"
	"github.com/gustfront/meteogram/internal/models"
)

// Client fetches raw ensemble payloads for one model at a time from an
// Open-Meteo-style ensemble endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	loc     *time.Location
}

func NewClient(baseURL string, loc *time.Location) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httputil.NewClient(),
		loc:     loc,
	}
}

// FetchOptions configures one payload request. Granularity is "hourly" or
// "daily"; it selects both the request block and the timestamp layout.
type FetchOptions struct {
	Latitude     float64
	Longitude    float64
	Granularity  string
	ForecastDays int
}

// Timestamp layouts of the wire contract. Hourly timestamps are local wall
// clock without offset, daily ones are bare dates.
const (
	hourlyLayout = "2006-01-02T15:04"
	dailyLayout  = "2006-01-02"
)

// FetchRaw retrieves the raw multi-member payload for one model and variable
// set. Rate-limit style statuses are retried with exponential backoff; other
// failures are permanent. The decoded series preserves nulls as missing
// samples and is validated for time-axis alignment.
func (c *Client) FetchRaw(ctx context.Context, model string, variables []string, opts FetchOptions) (*models.RawSeries, error) {
	granularity := opts.Granularity
	if granularity == "" {
		granularity = "hourly"
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", opts.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", opts.Longitude))
	q.Set("models", model)
	q.Set(granularity, strings.Join(variables, ","))
	q.Set("timezone", c.loc.String())
	if opts.ForecastDays > 0 {
		q.Set("forecast_days", fmt.Sprintf("%d", opts.ForecastDays))
	}
	reqURL := c.baseURL + "/v1/ensemble?" + q.Encode()

	var body []byte
	var status int
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}

		start := time.Now()
		resp, err := c.client.Do(req)
		metrics.EnsembleAPILatency.WithLabelValues(model).Observe(time.Since(start).Seconds())
		if err != nil {
			return backoff.Permanent(fmt.Errorf("fetch ensemble: %w", err))
		}
		defer resp.Body.Close()
		status = resp.StatusCode

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("upstream busy: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("fetch ensemble: status %d: %s", resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	err := backoff.Retry(operation, backoff.WithContext(bo, ctx))
	metrics.EnsembleAPICallsTotal.WithLabelValues(model, granularity, fmt.Sprintf("%d", status)).Inc()
	if err != nil {
		return nil, err
	}

	layout := hourlyLayout
	if granularity == "daily" {
		layout = dailyLayout
	}
	return decodeRawSeries(body, granularity, layout, c.loc)
}

// decodeRawSeries unpacks the wire contract: a block holding a "time" array
// of local ISO timestamps plus one numeric-or-null array per raw column, all
// index-aligned. Column names are not enumerated anywhere; member discovery
// happens downstream by naming convention.
func decodeRawSeries(body []byte, block, layout string, loc *time.Location) (*models.RawSeries, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	blockRaw, ok := envelope[block]
	if !ok {
		return nil, fmt.Errorf("payload has no %q block", block)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(blockRaw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal %s block: %w", block, err)
	}

	timeRaw, ok := fields["time"]
	if !ok {
		return nil, fmt.Errorf("%s block has no time axis", block)
	}
	var stamps []string
	if err := json.Unmarshal(timeRaw, &stamps); err != nil {
		return nil, fmt.Errorf("unmarshal time axis: %w", err)
	}

	series := &models.RawSeries{
		Time:    make([]time.Time, 0, len(stamps)),
		Columns: make(map[string][]*float64, len(fields)-1),
	}
	for i, s := range stamps {
		ts, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			return nil, fmt.Errorf("parse time[%d]=%q: %w", i, s, err)
		}
		series.Time = append(series.Time, ts)
	}

	for key, raw := range fields {
		if key == "time" {
			continue
		}
		var values []*float64
		if err := json.Unmarshal(raw, &values); err != nil {
			// non-array metadata fields (e.g. units objects) are skipped
			continue
		}
		if len(values) != len(series.Time) {
			return nil, fmt.Errorf("column %q has %d values for %d timestamps", key, len(values), len(series.Time))
		}
		series.Columns[key] = values
	}

	return series, nil
}
