package sensor

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_DispatchesFixesToWatcher(t *testing.T) {
	hub := newTestHub()

	var fixes []service.Fix
	cancel, err := hub.Watch("vehicle-1", service.WatchOptions{}, service.WatchCallbacks{
		OnFix: func(f service.Fix) { fixes = append(fixes, f) },
	})
	require.NoError(t, err)
	defer cancel()

	hub.ReportFix("vehicle-1", service.Fix{Lat: -8.9, Lng: 13.3})
	hub.ReportFix("vehicle-1", service.Fix{Lat: -8.91, Lng: 13.31})
	hub.ReportFix("other-vehicle", service.Fix{Lat: 0, Lng: 0})

	require.Len(t, fixes, 2)
	assert.Equal(t, -8.91, fixes[1].Lat)
	assert.False(t, fixes[0].At.IsZero(), "unstamped fixes get a timestamp")
}

func TestHub_EmptyDeviceIDRejected(t *testing.T) {
	hub := newTestHub()

	_, err := hub.Watch("", service.WatchOptions{}, service.WatchCallbacks{})
	assert.Error(t, err)
}

func TestHub_DropsFixesOlderThanMaxAge(t *testing.T) {
	hub := newTestHub()

	var fixes []service.Fix
	cancel, err := hub.Watch("vehicle-1", service.WatchOptions{MaxAge: 5 * time.Second}, service.WatchCallbacks{
		OnFix: func(f service.Fix) { fixes = append(fixes, f) },
	})
	require.NoError(t, err)
	defer cancel()

	hub.ReportFix("vehicle-1", service.Fix{Lat: 1, At: time.Now().Add(-time.Minute)})
	hub.ReportFix("vehicle-1", service.Fix{Lat: 2, At: time.Now()})

	require.Len(t, fixes, 1)
	assert.Equal(t, 2.0, fixes[0].Lat)
}

func TestHub_ReportsFailuresToWatcher(t *testing.T) {
	hub := newTestHub()

	var errs []error
	cancel, err := hub.Watch("vehicle-1", service.WatchOptions{}, service.WatchCallbacks{
		OnError: func(e error) { errs = append(errs, e) },
	})
	require.NoError(t, err)
	defer cancel()

	hub.ReportFailure("vehicle-1", "permission denied")

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "permission denied")
}

func TestHub_NoDispatchAfterCancel(t *testing.T) {
	hub := newTestHub()

	var fixes int
	cancel, err := hub.Watch("vehicle-1", service.WatchOptions{}, service.WatchCallbacks{
		OnFix: func(service.Fix) { fixes++ },
	})
	require.NoError(t, err)

	hub.ReportFix("vehicle-1", service.Fix{})
	cancel()
	cancel() // idempotent
	hub.ReportFix("vehicle-1", service.Fix{})
	hub.ReportFailure("vehicle-1", "late failure")

	assert.Equal(t, 1, fixes)
}

func TestHub_AcquisitionTimeoutFires(t *testing.T) {
	hub := newTestHub()

	timedOut := make(chan error, 1)
	cancel, err := hub.Watch("vehicle-1", service.WatchOptions{Timeout: 20 * time.Millisecond}, service.WatchCallbacks{
		OnError: func(e error) {
			select {
			case timedOut <- e:
			default:
			}
		},
	})
	require.NoError(t, err)
	defer cancel()

	select {
	case e := <-timedOut:
		assert.ErrorIs(t, e, service.ErrAcquisitionTimeout)
	case <-time.After(time.Second):
		t.Fatal("acquisition timeout never fired")
	}
}

func TestHub_FixResetsAcquisitionTimer(t *testing.T) {
	hub := newTestHub()

	var timeouts int
	cancel, err := hub.Watch("vehicle-1", service.WatchOptions{Timeout: 80 * time.Millisecond}, service.WatchCallbacks{
		OnError: func(error) { timeouts++ },
	})
	require.NoError(t, err)
	defer cancel()

	// Keep feeding fixes faster than the timeout; the timer must keep
	// getting pushed back.
	for range 4 {
		time.Sleep(30 * time.Millisecond)
		hub.ReportFix("vehicle-1", service.Fix{})
	}

	assert.Zero(t, timeouts)
}
