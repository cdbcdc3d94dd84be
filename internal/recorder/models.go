package recorder

import "time"

// AuthorizationState mirrors the platform location permission states.
type AuthorizationState string

const (
	AuthNotDetermined AuthorizationState = "not_determined"
	AuthWhileTracking AuthorizationState = "authorized_while_tracking"
	AuthDenied        AuthorizationState = "denied"
	AuthRestricted    AuthorizationState = "restricted"
)

// Fix is one raw reading from the location source. Speed and altitude are
// nil when the sensor did not report them.
type Fix struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
	AccuracyM  float64   `json:"accuracy_m"`
	SpeedMps   *float64  `json:"speed_mps,omitempty"`
	AltitudeM  *float64  `json:"altitude_m,omitempty"`
}

// RoutePoint is a fix that passed the acceptance filter. Immutable once
// appended; smoothing replaces the whole slice, never single elements.
type RoutePoint struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
	SpeedMps   *float64  `json:"speed_mps,omitempty"`
	AltitudeM  *float64  `json:"altitude_m,omitempty"`
}

// Trip is one start-to-stop tracked journey.
type Trip struct {
	ID            string       `json:"id"`
	VehicleID     string       `json:"vehicle_id"`
	StartedAt     time.Time    `json:"started_at"`
	EndedAt       time.Time    `json:"ended_at,omitempty"`
	StartOdometer float64      `json:"start_odometer"`
	EndOdometer   float64      `json:"end_odometer"`
	IsActive      bool         `json:"is_active"`
	RoutePoints   []RoutePoint `json:"route_points"`
	DistanceM     float64      `json:"distance_m"`
}

// Duration returns the tracked duration, zero while the trip is active or
// when timestamps are degenerate.
func (t Trip) Duration() time.Duration {
	if t.EndedAt.IsZero() || t.EndedAt.Before(t.StartedAt) {
		return 0
	}
	return t.EndedAt.Sub(t.StartedAt)
}

// Snapshot is the read-only view published to the UI after every processed
// event.
type Snapshot struct {
	Tracking     bool    `json:"tracking"`
	TripID       string  `json:"trip_id,omitempty"`
	Speed        float64 `json:"speed"`
	SpeedUnit    string  `json:"speed_unit"`
	DistanceM    float64 `json:"distance_m"`
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distance_unit"`
	GPSLive      bool    `json:"gps_live"`
	PointCount   int     `json:"point_count"`
}

// Region is the padded bounding box of a route, used by map rendering.
type Region struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	LatSpan   float64 `json:"lat_span"`
	LngSpan   float64 `json:"lng_span"`
}

func pointFromFix(fix Fix) RoutePoint {
	return RoutePoint{
		Lat:        fix.Lat,
		Lng:        fix.Lng,
		RecordedAt: fix.RecordedAt,
		SpeedMps:   fix.SpeedMps,
		AltitudeM:  fix.AltitudeM,
	}
}
