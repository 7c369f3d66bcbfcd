package service

import (
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
)

// ErrAcquisitionTimeout is delivered through WatchCallbacks.OnError when no
// fix arrives within the configured acquisition timeout.
var ErrAcquisitionTimeout = errors.New("position acquisition timed out")

// Fix is a raw position report from a device sensor.
type Fix struct {
	Lat      float64
	Lng      float64
	Accuracy float64
	At       time.Time
}

// WatchOptions control a continuous-sampling subscription.
type WatchOptions struct {
	// HighAccuracy requests the device's high-accuracy mode.
	HighAccuracy bool
	// MaxAge is the maximum acceptable age of a delivered fix.
	MaxAge time.Duration
	// Timeout is the acquisition timeout per sample.
	Timeout time.Duration
}

// WatchCallbacks receive the asynchronous events of a subscription. They may
// be invoked from any goroutine; a callback is never invoked after the
// subscription's cancel function returns.
type WatchCallbacks struct {
	OnFix   func(Fix)
	OnError func(error)
}

// CancelWatch stops a continuous-sampling subscription. Idempotent.
type CancelWatch func()

// PositionSensor is the continuous location-sampling source for a device.
// The concrete implementation is injected, never reached for ambiently, so
// the tracking session stays independently testable.
type PositionSensor interface {
	Watch(deviceID string, opts WatchOptions, callbacks WatchCallbacks) (CancelWatch, error)
}
