package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	deliverycontext "github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/context"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	domainerrors "github.com/cacupatiago-web/frotaapp-sub000/internal/domain/errors"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/lifecycle"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"
)

// locationUnavailableMessage is the terminal user-facing error of an
// activation whose sensor and IP fallback both failed.
const locationUnavailableMessage = "could not determine current location"

// trackingSession is the per-activation state. Every field is guarded by the
// service mutex; callbacks check the cancelled flag before committing state
// so results arriving after deactivation are dropped.
type trackingSession struct {
	deviceID    string
	cancelled   bool
	ipAttempted bool
	loading     bool
	errMsg      string
	hasSensor   bool
	latest      *entity.LiveSample
	samples     []entity.LiveSample
	stopWatch   service.CancelWatch
}

type trackingService struct {
	sensor  service.PositionSensor
	locator service.IPLocator
	cfg     *config.TrackingConfig
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*trackingSession
}

// NewTrackingService creates a tracking service instance.
func NewTrackingService(
	sensor service.PositionSensor,
	locator service.IPLocator,
	cfg *config.TrackingConfig,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		sensor:   sensor,
		locator:  locator,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[uuid.UUID]*trackingSession),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Activate starts continuous sampling for the session's device. A fresh
// activation replaces any previous one, which also re-arms the one-shot IP
// fallback guard.
func (s *trackingService) Activate(ctx context.Context, sessionID uuid.UUID, deviceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sess := &trackingSession{
		deviceID: deviceID,
		loading:  true,
	}

	s.mu.Lock()
	previous := s.sessions[sessionID]
	var prevStop service.CancelWatch
	if previous != nil {
		previous.cancelled = true
		prevStop = previous.stopWatch
		previous.stopWatch = nil
	}
	s.sessions[sessionID] = sess
	s.mu.Unlock()

	// Stopped outside the lock; the sensor dispatches callbacks under its
	// own lock and those callbacks take ours.
	if prevStop != nil {
		prevStop()
	}

	stop, err := s.sensor.Watch(deviceID, service.WatchOptions{
		HighAccuracy: s.cfg.HighAccuracy,
		MaxAge:       s.cfg.MaxSampleAge,
		Timeout:      s.cfg.AcquisitionTimeout,
	}, service.WatchCallbacks{
		OnFix:   func(fix service.Fix) { s.onFix(sess, fix) },
		OnError: func(err error) { s.onSensorError(sess, err) },
	})
	if err != nil {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()

		s.log(ctx).Error("tracking activation failed",
			slog.String("session_id", sessionID.String()),
			slog.String("device_id", deviceID),
			slog.Any("error", err))

		return domainerrors.ErrTrackingActivation
	}

	s.mu.Lock()
	if sess.cancelled {
		// Deactivated while the watch was being registered.
		s.mu.Unlock()
		stop()

		return nil
	}
	sess.stopWatch = stop
	s.mu.Unlock()

	return nil
}

// Deactivate cancels the sampling subscription and discards the trajectory.
// The latest position is kept so callers can still read the final state.
func (s *trackingService) Deactivate(sessionID uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()

		return domainerrors.ErrTrackingSessionNotFound
	}

	sess.cancelled = true
	sess.loading = false
	sess.samples = nil
	stop := sess.stopWatch
	sess.stopWatch = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}

	return nil
}

// State returns the latest position, loading flag and terminal error of the
// session's current activation.
func (s *trackingService) State(sessionID uuid.UUID) (*usecase.TrackingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrTrackingSessionNotFound
	}

	state := &usecase.TrackingState{
		IsLoading: sess.loading,
		Error:     sess.errMsg,
	}
	if sess.latest != nil {
		latest := *sess.latest
		state.Position = &latest
	}

	return state, nil
}

// Trajectory returns the ordered samples of the current activation. Samples
// keep arrival order; nothing is reordered or deduplicated.
func (s *trackingService) Trajectory(sessionID uuid.UUID) ([]entity.LiveSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrTrackingSessionNotFound
	}

	if !sess.hasSensor {
		// No sensor fix ever arrived; expose the unfiltered sequence so an
		// IP-only activation still has a trajectory.
		return append([]entity.LiveSample(nil), sess.samples...), nil
	}

	trajectory := make([]entity.LiveSample, 0, len(sess.samples))
	for _, sample := range sess.samples {
		if sample.Source == entity.SourceGPS {
			trajectory = append(trajectory, sample)
		}
	}

	return trajectory, nil
}

func (s *trackingService) onFix(sess *trackingSession, fix service.Fix) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.cancelled {
		return
	}

	sample := entity.LiveSample{
		Lat:        fix.Lat,
		Lng:        fix.Lng,
		Accuracy:   fix.Accuracy,
		Source:     entity.SourceGPS,
		RecordedAt: fix.At,
	}

	sess.latest = &sample
	sess.loading = false
	sess.hasSensor = true
	sess.samples = append(sess.samples, sample)
}

func (s *trackingService) onSensorError(sess *trackingSession, err error) {
	s.mu.Lock()
	if sess.cancelled || sess.ipAttempted {
		// The IP lookup runs at most once per activation.
		s.mu.Unlock()

		return
	}
	sess.ipAttempted = true
	deviceID := sess.deviceID
	s.mu.Unlock()

	s.logger.Warn("sensor failure, falling back to ip geolocation",
		slog.String("device_id", deviceID),
		slog.Any("error", err))

	go s.fallbackToIP(sess)
}

func (s *trackingService) fallbackToIP(sess *trackingSession) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	point, err := s.locator.Locate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.cancelled {
		// Stale result after deactivation is dropped, not applied.
		return
	}

	if err != nil {
		sess.errMsg = locationUnavailableMessage
		sess.loading = false

		return
	}

	sample := entity.LiveSample{
		Lat:        point.Lat,
		Lng:        point.Lng,
		Source:     entity.SourceIP,
		RecordedAt: time.Now(),
	}

	// Whichever of the IP lookup and a sensor fix resolves last wins the
	// exposed latest position.
	sess.latest = &sample
	sess.loading = false
	sess.samples = append(sess.samples, sample)
}
