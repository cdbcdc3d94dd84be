package recorder

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"backend-drivelog/internal/shared/geo"
	"backend-drivelog/internal/stream"

	"github.com/google/uuid"
)

var (
	ErrAlreadyTracking = errors.New("a trip is already being tracked")
	ErrNotTracking     = errors.New("no trip is being tracked")
)

// The live-signal indicator goes dark when no fix has arrived for this long.
const signalStaleAfter = 10 * time.Second

// OdometerSource supplies the current odometer reading of a vehicle.
type OdometerSource interface {
	Odometer(ctx context.Context, vehicleID string) (float64, error)
}

// TripSink receives the finalized trip when tracking stops.
type TripSink interface {
	SaveTrip(ctx context.Context, trip Trip) error
}

// Recorder turns a stream of raw location fixes into a recorded trip. All
// state is owned by a single goroutine fed through one ordered channel, so
// fixes, authorization changes, and start/stop commands never interleave
// and no locking is needed.
type Recorder struct {
	events chan any

	odometer OdometerSource
	sink     TripSink
	hub      *stream.Hub
	unit     string
	now      func() time.Time

	// Everything below is touched only by the Run goroutine.
	tracking  bool
	trip      Trip
	points    []RoutePoint
	distance  distanceAccumulator
	lastFix   *Fix
	lastFixAt time.Time
	authState AuthorizationState
}

type fixEvent struct {
	fix Fix
}

type authEvent struct {
	state AuthorizationState
}

type startCommand struct {
	vehicleID string
	reply     chan startReply
}

type startReply struct {
	trip Trip
	err  error
}

type stopCommand struct {
	reply chan stopReply
}

type stopReply struct {
	trip Trip
	err  error
}

type snapshotQuery struct {
	reply chan Snapshot
}

type routeQuery struct {
	interpolate bool
	reply       chan []RoutePoint
}

// New builds a recorder. hub may be nil; unit is "km" or "mi".
func New(odometer OdometerSource, sink TripSink, hub *stream.Hub, unit string) *Recorder {
	return &Recorder{
		events:    make(chan any, 16),
		odometer:  odometer,
		sink:      sink,
		hub:       hub,
		unit:      unit,
		now:       time.Now,
		authState: AuthNotDetermined,
	}
}

// Run consumes events until ctx is canceled. It must be running for any of
// the public methods to return.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			r.process(ctx, ev)
		}
	}
}

// Start begins tracking a new trip for the given vehicle. A no-op returning
// ErrAlreadyTracking when a trip is active.
func (r *Recorder) Start(ctx context.Context, vehicleID string) (Trip, error) {
	reply := make(chan startReply, 1)
	if err := r.send(ctx, startCommand{vehicleID: vehicleID, reply: reply}); err != nil {
		return Trip{}, err
	}
	select {
	case res := <-reply:
		return res.trip, res.err
	case <-ctx.Done():
		return Trip{}, ctx.Err()
	}
}

// Stop finalizes the active trip, hands it to the sink, and returns it.
// A no-op returning ErrNotTracking when nothing is being tracked.
func (r *Recorder) Stop(ctx context.Context) (Trip, error) {
	reply := make(chan stopReply, 1)
	if err := r.send(ctx, stopCommand{reply: reply}); err != nil {
		return Trip{}, err
	}
	select {
	case res := <-reply:
		return res.trip, res.err
	case <-ctx.Done():
		return Trip{}, ctx.Err()
	}
}

// OfferFix delivers one raw fix. Fixes received while not tracking only
// refresh the live-signal indicator.
func (r *Recorder) OfferFix(ctx context.Context, fix Fix) error {
	return r.send(ctx, fixEvent{fix: fix})
}

// SetAuthorization records a platform permission change. Losing
// authorization never stops an active trip; fixes simply stop arriving.
func (r *Recorder) SetAuthorization(ctx context.Context, state AuthorizationState) error {
	return r.send(ctx, authEvent{state: state})
}

// Snapshot returns the current UI view of the recorder.
func (r *Recorder) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if err := r.send(ctx, snapshotQuery{reply: reply}); err != nil {
		return Snapshot{}, err
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Route returns a copy of the working route, optionally densified for
// rendering.
func (r *Recorder) Route(ctx context.Context, interpolate bool) ([]RoutePoint, error) {
	reply := make(chan []RoutePoint, 1)
	if err := r.send(ctx, routeQuery{interpolate: interpolate, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case pts := <-reply:
		return pts, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Recorder) send(ctx context.Context, ev any) error {
	select {
	case r.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) process(ctx context.Context, ev any) {
	switch e := ev.(type) {
	case fixEvent:
		r.handleFix(e.fix)
		r.publishSnapshot()
	case authEvent:
		r.authState = e.state
		r.publishSnapshot()
	case startCommand:
		e.reply <- r.handleStart(ctx, e.vehicleID)
		r.publishSnapshot()
	case stopCommand:
		e.reply <- r.handleStop(ctx)
	case snapshotQuery:
		e.reply <- r.buildSnapshot()
	case routeQuery:
		pts := make([]RoutePoint, len(r.points))
		copy(pts, r.points)
		if e.interpolate {
			pts = InterpolateRoute(pts)
		}
		e.reply <- pts
	}
}

func (r *Recorder) handleFix(fix Fix) {
	r.lastFix = &fix
	r.lastFixAt = r.now()

	if !r.tracking {
		return
	}

	var last *RoutePoint
	if len(r.points) > 0 {
		last = &r.points[len(r.points)-1]
	}
	if !acceptFix(last, fix) {
		return
	}

	point := pointFromFix(fix)
	if last != nil {
		r.distance.add(*last, point)
	}
	r.points = append(r.points, point)

	if len(r.points) >= smootherMinPoints {
		r.points = smoothRoute(r.points)
	}
}

func (r *Recorder) handleStart(ctx context.Context, vehicleID string) startReply {
	if r.tracking {
		log.Printf("recorder: start ignored, trip %s still active", r.trip.ID)
		return startReply{err: ErrAlreadyTracking}
	}

	var startOdo float64
	if r.odometer != nil {
		odo, err := r.odometer.Odometer(ctx, vehicleID)
		if err != nil {
			return startReply{err: err}
		}
		startOdo = odo
	}

	r.distance.reset()
	r.points = nil
	r.trip = Trip{
		ID:            uuid.NewString(),
		VehicleID:     vehicleID,
		StartedAt:     r.now(),
		StartOdometer: startOdo,
		IsActive:      true,
	}
	r.tracking = true
	return startReply{trip: r.trip}
}

func (r *Recorder) handleStop(ctx context.Context) stopReply {
	if !r.tracking {
		log.Printf("recorder: stop ignored, no active trip")
		return stopReply{err: ErrNotTracking}
	}

	r.points = smoothRoute(r.points)

	r.trip.EndedAt = r.now()
	r.trip.IsActive = false
	r.trip.RoutePoints = r.points
	r.trip.DistanceM = r.distance.Meters()
	if r.odometer != nil {
		odo, err := r.odometer.Odometer(ctx, r.trip.VehicleID)
		if err != nil {
			log.Printf("recorder: end odometer read failed: %v", err)
		} else {
			r.trip.EndOdometer = odo
		}
	}

	finalized := r.trip
	r.tracking = false
	r.publishSnapshot()
	r.trip = Trip{}
	r.points = nil

	if r.sink != nil {
		if err := r.sink.SaveTrip(ctx, finalized); err != nil {
			return stopReply{trip: finalized, err: err}
		}
	}
	return stopReply{trip: finalized}
}

func (r *Recorder) buildSnapshot() Snapshot {
	s := Snapshot{
		Tracking:   r.tracking,
		DistanceM:  r.distance.Meters(),
		GPSLive:    !r.lastFixAt.IsZero() && r.now().Sub(r.lastFixAt) <= signalStaleAfter,
		PointCount: len(r.points),
	}
	if r.tracking {
		s.TripID = r.trip.ID
	}

	var speedMps float64
	if r.lastFix != nil && r.lastFix.SpeedMps != nil {
		speedMps = *r.lastFix.SpeedMps
	}
	if r.unit == "mi" {
		s.Speed = geo.MpsToMph(speedMps)
		s.SpeedUnit = "mph"
		s.Distance = r.distance.Miles()
		s.DistanceUnit = "mi"
	} else {
		s.Speed = geo.MpsToKph(speedMps)
		s.SpeedUnit = "km/h"
		s.Distance = r.distance.Kilometers()
		s.DistanceUnit = "km"
	}
	return s
}

func (r *Recorder) publishSnapshot() {
	if r.hub == nil || r.trip.ID == "" {
		return
	}
	payload, err := json.Marshal(r.buildSnapshot())
	if err != nil {
		log.Printf("recorder: snapshot marshal error: %v", err)
		return
	}
	r.hub.Broadcast(r.trip.ID, payload)
}
