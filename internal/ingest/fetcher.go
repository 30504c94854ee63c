package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gustfront/meteogram/internal/metrics"
	"github.com/gustfront/meteogram/internal/models"
)

// ErrSuperseded reports that a newer fetch replaced this one before it
// finished. The stale results must be discarded, never merged: aggregating an
// old model's data against a newer variable selection would silently misalign
// the chart.
var ErrSuperseded = errors.New("fetch superseded by newer request")

// ModelPayload is one model's complete raw payload.
type ModelPayload struct {
	ModelID string
	Raw     *models.RawSeries
}

// Fetcher issues the per-model requests for one chart configuration
// concurrently and joins them before returning. Users change variable, model
// set, unit and granularity faster than a fetch completes, so each call
// supersedes any in-flight one: the older call's context is cancelled and its
// result, even if complete, is dropped.
type Fetcher struct {
	client *Client

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchModels fetches the given variable set for every model in modelIDs.
// The result is all-or-nothing: any per-model failure fails the whole call,
// so the engine is never invoked with partial payloads. Payloads are returned
// in modelIDs order.
func (f *Fetcher) FetchModels(ctx context.Context, modelIDs []string, variables []string, opts FetchOptions) ([]ModelPayload, error) {
	f.mu.Lock()
	f.gen++
	myGen := f.gen
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()

	payloads := make([]ModelPayload, len(modelIDs))
	errs := make([]error, len(modelIDs))

	var wg sync.WaitGroup
	for i, id := range modelIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			raw, err := f.client.FetchRaw(ctx, id, variables, opts)
			if err != nil {
				errs[i] = fmt.Errorf("model %s: %w", id, err)
				return
			}
			payloads[i] = ModelPayload{ModelID: id, Raw: raw}
		}(i, id)
	}
	wg.Wait()

	f.mu.Lock()
	superseded := f.gen != myGen
	f.mu.Unlock()
	if superseded {
		metrics.FetchesSuperseded.Inc()
		return nil, ErrSuperseded
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return payloads, nil
}
