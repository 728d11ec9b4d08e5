package atcoder

import (
	"context"
	"slices"
	"sync"
	"time"

	"atcoder_judger/common/constants/verdict"
	"atcoder_judger/common/metrics"
	"atcoder_judger/lib/logger"
)

// Fetcher performs the single status check the tracker runs per entry.
type Fetcher interface {
	Fetch(runID string) *SolutionResult
}

// Tracker is the sole owner of the runID -> callback map. Entry points only
// add entries through Register; only the polling loop removes them.
type Tracker struct {
	fetcher  Fetcher
	interval time.Duration
	metrics  *metrics.Collector

	mutex   sync.Mutex
	entries map[string]UpdateFunc
	order   []string
}

func NewTracker(fetcher Fetcher, interval time.Duration, collector *metrics.Collector) *Tracker {
	return &Tracker{
		fetcher:  fetcher,
		interval: interval,
		metrics:  collector,
		entries:  make(map[string]UpdateFunc),
	}
}

// Register starts polling runID and reporting every result to update.
// Registering an already-tracked runID replaces its callback.
func (t *Tracker) Register(runID string, update UpdateFunc) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, tracked := t.entries[runID]; !tracked {
		t.order = append(t.order, runID)
	}
	t.entries[runID] = update
	t.metrics.TrackedSubmissions.Set(float64(len(t.entries)))
	logger.Debug("tracking submission %s", runID)
}

// Tracking returns the currently polled run IDs in registration order.
func (t *Tracker) Tracking() []string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return slices.Clone(t.order)
}

// RunLoop polls until ctx is canceled. The interval is measured from the end
// of one pass to the start of the next, so a slow remote site throttles
// polling instead of piling up overlapping passes.
func (t *Tracker) RunLoop(ctx context.Context) {
	logger.Info("starting submission tracking loop")

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping submission tracking loop")
			return
		case <-timer.C:
		}
		t.runPass()
		timer.Reset(t.interval)
	}
}

// runPass checks every tracked submission once, sequentially and in
// registration order. Entries that reached a terminal verdict are dropped.
func (t *Tracker) runPass() {
	for _, runID := range t.Tracking() {
		t.mutex.Lock()
		update, tracked := t.entries[runID]
		t.mutex.Unlock()
		if !tracked {
			continue
		}

		result := t.fetcher.Fetch(runID)
		t.dispatch(runID, update, result)

		if result.Status.Terminal() {
			if result.Status == verdict.JF {
				t.metrics.FetchFailures.Inc()
			}
			t.metrics.VerdictsCount.WithLabelValues(string(result.Status)).Inc()
			t.remove(runID)
		}
	}
	t.metrics.TrackerPasses.Inc()
}

// dispatch shields the pass from the host's callback: the callback is not
// ours, and a panicking one must not end polling for everyone else.
func (t *Tracker) dispatch(runID string, update UpdateFunc, result *SolutionResult) {
	defer func() {
		if v := recover(); v != nil {
			logger.Error("update callback for %s panicked: %v", runID, v)
		}
	}()
	update(result)
}

func (t *Tracker) remove(runID string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.entries, runID)
	t.order = slices.DeleteFunc(t.order, func(id string) bool { return id == runID })
	t.metrics.TrackedSubmissions.Set(float64(len(t.entries)))
	logger.Debug("submission %s reached a terminal state, dropped from tracking", runID)
}
