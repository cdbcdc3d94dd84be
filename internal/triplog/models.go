package triplog

import (
	"time"

	"backend-drivelog/internal/recorder"
)

// Trip is a persisted drive log. RoutePoints is populated on single-trip
// reads, left nil on listings.
type Trip struct {
	ID            string                `json:"id"`
	VehicleID     string                `json:"vehicle_id"`
	StartedAt     time.Time             `json:"started_at"`
	EndedAt       time.Time             `json:"ended_at"`
	StartOdometer float64               `json:"start_odometer"`
	EndOdometer   float64               `json:"end_odometer"`
	DistanceM     float64               `json:"distance_m"`
	RoutePoints   []recorder.RoutePoint `json:"route_points,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
