package triplog

import (
	"context"

	"backend-drivelog/internal/db"
	"backend-drivelog/internal/recorder"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// SaveTrip persists a finalized trip and its route. Implements
// recorder.TripSink; the recorder never touches the trip again after this.
func (s *Service) SaveTrip(ctx context.Context, trip recorder.Trip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (id, vehicle_id, started_at, ended_at, start_odometer, end_odometer, distance_m)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, trip.ID, trip.VehicleID, trip.StartedAt, trip.EndedAt, trip.StartOdometer, trip.EndOdometer, trip.DistanceM)
	if err != nil {
		return err
	}

	for i, p := range trip.RoutePoints {
		_, err := s.db.Exec(ctx, `
			INSERT INTO route_points (trip_id, seq, location, recorded_at, speed_mps, altitude_m)
			VALUES ($1,$2, ST_SetSRID(ST_MakePoint($3,$4), 4326)::geography, $5,$6,$7)
		`, trip.ID, i, p.Lng, p.Lat, p.RecordedAt, p.SpeedMps, p.AltitudeM)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Trips(ctx context.Context, vehicleID string) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, started_at, ended_at, start_odometer, end_odometer, distance_m, created_at
		FROM trips WHERE vehicle_id=$1
		ORDER BY started_at DESC
	`, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.StartedAt, &t.EndedAt, &t.StartOdometer, &t.EndOdometer, &t.DistanceM, &t.CreatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func (s *Service) GetTrip(ctx context.Context, id string) (Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, vehicle_id, started_at, ended_at, start_odometer, end_odometer, distance_m, created_at
		FROM trips WHERE id=$1
	`, id)
	var t Trip
	if err := row.Scan(&t.ID, &t.VehicleID, &t.StartedAt, &t.EndedAt, &t.StartOdometer, &t.EndOdometer, &t.DistanceM, &t.CreatedAt); err != nil {
		return Trip{}, err
	}

	points, err := s.Route(ctx, id, false)
	if err != nil {
		return Trip{}, err
	}
	t.RoutePoints = points
	return t, nil
}

func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM route_points WHERE trip_id=$1`, id); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id=$1`, id)
	return err
}

// Route loads a trip's persisted points in recorded order, optionally
// densified for rendering. Interpolated points are never written back.
func (s *Service) Route(ctx context.Context, tripID string, interpolate bool) ([]recorder.RoutePoint, error) {
	rows, err := s.db.Query(ctx, `
		SELECT ST_Y(location::geometry), ST_X(location::geometry), recorded_at, speed_mps, altitude_m
		FROM route_points WHERE trip_id=$1
		ORDER BY seq
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []recorder.RoutePoint
	for rows.Next() {
		var p recorder.RoutePoint
		if err := rows.Scan(&p.Lat, &p.Lng, &p.RecordedAt, &p.SpeedMps, &p.AltitudeM); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	if interpolate {
		points = recorder.InterpolateRoute(points)
	}
	return points, nil
}

// Region computes the map viewport for a persisted trip.
func (s *Service) Region(ctx context.Context, tripID string) (recorder.Region, bool, error) {
	points, err := s.Route(ctx, tripID, false)
	if err != nil {
		return recorder.Region{}, false, err
	}
	region, ok := recorder.RouteRegion(points)
	return region, ok, nil
}
