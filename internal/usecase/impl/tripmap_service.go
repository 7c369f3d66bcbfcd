package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	deliverycontext "github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/context"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	domainerrors "github.com/cacupatiago-web/frotaapp-sub000/internal/domain/errors"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/maprender"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/util"
)

// tripMapSession holds the composed state of one prepared trip map. The
// renderer exclusively owns the map surface; the session only stores the
// immutable resolution and planning results.
type tripMapSession struct {
	origin      entity.GeoPoint
	destination entity.GeoPoint
	route       *entity.RouteResult
	renderer    *maprender.Renderer
}

type tripMapService struct {
	geocoder service.Geocoder
	planner  service.RoutePlanner
	factory  service.MapSurfaceFactory
	tracking usecase.TrackingUsecase
	qrcode   service.QRCodeService
	cfg      *config.Config
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*tripMapSession
}

// NewTripMapService creates a trip map service instance.
func NewTripMapService(
	geocoder service.Geocoder,
	planner service.RoutePlanner,
	factory service.MapSurfaceFactory,
	tracking usecase.TrackingUsecase,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TripMapUsecase {
	return &tripMapService{
		geocoder: geocoder,
		planner:  planner,
		factory:  factory,
		tracking: tracking,
		qrcode:   qrcode,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[uuid.UUID]*tripMapSession),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *tripMapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Prepare resolves both labels, plans the driving route and opens a new map
// session.
func (s *tripMapService) Prepare(ctx context.Context, input *usecase.TripMapInput) (*usecase.TripMapView, error) {
	if input == nil || strings.TrimSpace(input.Origem) == "" || strings.TrimSpace(input.Destino) == "" {
		return nil, domainerrors.ErrEmptyLabel
	}

	// The two resolutions are independent axes; each one still runs its own
	// fallback chain strictly sequentially.
	var (
		wg          sync.WaitGroup
		origin      entity.GeoPoint
		destination entity.GeoPoint
		originErr   error
		destErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		origin, originErr = s.geocoder.Resolve(ctx, input.Origem)
	}()
	go func() {
		defer wg.Done()
		destination, destErr = s.geocoder.Resolve(ctx, input.Destino)
	}()
	wg.Wait()

	if originErr != nil {
		if errors.Is(originErr, service.ErrNoMatch) {
			return nil, domainerrors.ErrOriginNotFound
		}

		return nil, s.downgrade(ctx, "origin resolution", originErr)
	}
	if destErr != nil {
		if errors.Is(destErr, service.ErrNoMatch) {
			return nil, domainerrors.ErrDestinationNotFound
		}

		return nil, s.downgrade(ctx, "destination resolution", destErr)
	}

	route, err := s.planner.Plan(ctx, origin, destination)
	if err != nil {
		if errors.Is(err, service.ErrNoRoute) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, s.downgrade(ctx, "route planning", err)
	}

	sess := &tripMapSession{
		origin:      origin,
		destination: destination,
		route:       route,
		renderer:    maprender.New(s.factory, s.cfg.Map),
	}

	sessionID := uuid.New()

	s.mu.Lock()
	s.sessions[sessionID] = sess
	s.mu.Unlock()

	sess.renderer.Update(route.Points, nil, nil)

	return s.view(sessionID, sess), nil
}

// Snapshot recomputes the session's map from the stored planned route plus
// the tracking session's current trajectory and latest position. Every call
// redraws from scratch, so upstream updates may arrive in any order.
func (s *tripMapService) Snapshot(ctx context.Context, sessionID uuid.UUID) (*usecase.TripMapView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, domainerrors.ErrMapSessionNotFound
	}

	var travelled []entity.GeoPoint
	if samples, err := s.tracking.Trajectory(sessionID); err == nil {
		travelled = make([]entity.GeoPoint, 0, len(samples))
		for _, sample := range samples {
			travelled = append(travelled, sample.Point())
		}
	}

	var current *entity.GeoPoint
	if state, err := s.tracking.State(sessionID); err == nil && state.Position != nil {
		point := state.Position.Point()
		current = &point
	}

	sess.renderer.Update(sess.route.Points, travelled, current)

	return s.view(sessionID, sess), nil
}

// ShareQR renders the session's share link as a PNG QR code.
func (s *tripMapService) ShareQR(sessionID uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, domainerrors.ErrMapSessionNotFound
	}

	return s.qrcode.GenerateShareQR(s.shareURL(sessionID))
}

// Release disposes the session's map surface and forgets the session.
func (s *tripMapService) Release(sessionID uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrMapSessionNotFound
	}

	sess.renderer.Dispose()

	return nil
}

func (s *tripMapService) view(sessionID uuid.UUID, sess *tripMapSession) *usecase.TripMapView {
	view := &usecase.TripMapView{
		SessionID:   sessionID,
		Origin:      sess.origin,
		Destination: sess.destination,
		Route:       sess.route,
		Distance:    util.FormatDistanceKm(sess.route.DistanceKm),
		Duration:    util.FormatDuration(time.Duration(sess.route.DurationMin * float64(time.Minute))),
		ShareURL:    s.shareURL(sessionID),
	}

	if surface, ok := sess.renderer.Surface().(*maprender.ViewSurface); ok {
		snapshot := surface.Snapshot()
		view.Map = &snapshot
	}

	return view
}

func (s *tripMapService) shareURL(sessionID uuid.UUID) string {
	base := ""
	if s.cfg.QRCode != nil {
		base = strings.TrimRight(s.cfg.QRCode.BaseURL, "/")
	}

	return fmt.Sprintf("%s/trips/map/%s", base, sessionID)
}

// downgrade contains unexpected transport failures at the composition
// boundary; callers only ever see the generic preparation error.
func (s *tripMapService) downgrade(ctx context.Context, stage string, err error) error {
	s.log(ctx).Error("trip map preparation failed",
		slog.String("stage", stage),
		slog.Any("error", err))

	return domainerrors.ErrMapPreparation
}
