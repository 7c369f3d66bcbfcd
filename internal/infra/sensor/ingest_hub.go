// Package sensor implements the position sensor contract on top of device
// HTTP reports: vehicles push GPS fixes and sensor failures to the service,
// and the hub fans them out to active continuous-sampling subscriptions.
package sensor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
)

type watch struct {
	id        int64
	deviceID  string
	opts      service.WatchOptions
	callbacks service.WatchCallbacks
	timer     *time.Timer
	cancelled bool
}

// Hub dispatches device position reports to subscribers. It enforces the
// per-subscription sample-age limit and acquisition timeout, so subscribers
// see the same semantics a platform geolocation watch would give them.
type Hub struct {
	mu      sync.Mutex
	watches map[string]map[int64]*watch
	nextID  int64
	logger  *slog.Logger
}

// NewHub creates an empty sensor hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		watches: make(map[string]map[int64]*watch),
		logger:  logger,
	}
}

// Watch registers a continuous-sampling subscription for a device.
// Callbacks run synchronously under the hub lock: once the returned cancel
// function returns, no further callback is invoked. Callbacks must not call
// back into the hub.
func (h *Hub) Watch(deviceID string, opts service.WatchOptions, callbacks service.WatchCallbacks) (service.CancelWatch, error) {
	if deviceID == "" {
		return nil, errors.New("device id is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	w := &watch{
		id:        h.nextID,
		deviceID:  deviceID,
		opts:      opts,
		callbacks: callbacks,
	}

	if opts.Timeout > 0 {
		w.timer = time.AfterFunc(opts.Timeout, func() { h.onTimeout(w) })
	}

	if h.watches[deviceID] == nil {
		h.watches[deviceID] = make(map[int64]*watch)
	}
	h.watches[deviceID][w.id] = w

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if w.cancelled {
			return
		}
		w.cancelled = true
		if w.timer != nil {
			w.timer.Stop()
		}
		delete(h.watches[deviceID], w.id)
		if len(h.watches[deviceID]) == 0 {
			delete(h.watches, deviceID)
		}
	}

	return cancel, nil
}

// ReportFix delivers a device GPS fix to every subscription watching the
// device. Fixes older than a subscription's max sample age are dropped for
// that subscription.
func (h *Hub) ReportFix(deviceID string, fix service.Fix) {
	if fix.At.IsZero() {
		fix.At = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, w := range h.watches[deviceID] {
		if w.opts.MaxAge > 0 && time.Since(fix.At) > w.opts.MaxAge {
			h.logger.Debug("stale fix dropped",
				slog.String("device", deviceID), slog.Time("recorded_at", fix.At))

			continue
		}

		if w.timer != nil {
			w.timer.Reset(w.opts.Timeout)
		}
		if w.callbacks.OnFix != nil {
			w.callbacks.OnFix(fix)
		}
	}
}

// ReportFailure delivers a device-side sensor failure (permission denied,
// hardware unavailable) to every subscription watching the device.
func (h *Hub) ReportFailure(deviceID string, reason string) {
	err := errors.Errorf("device sensor failure: %s", reason)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, w := range h.watches[deviceID] {
		if w.callbacks.OnError != nil {
			w.callbacks.OnError(err)
		}
	}
}

// onTimeout fires the acquisition timeout for one subscription and re-arms
// the timer for the next sample.
func (h *Hub) onTimeout(w *watch) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if w.cancelled {
		return
	}

	if w.callbacks.OnError != nil {
		w.callbacks.OnError(service.ErrAcquisitionTimeout)
	}
	if w.timer != nil {
		w.timer.Reset(w.opts.Timeout)
	}
}

var _ service.PositionSensor = (*Hub)(nil)
