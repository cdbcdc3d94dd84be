package recorder

import (
	"math"
	"time"

	"backend-drivelog/internal/shared/geo"
)

const (
	interpolateGapM  = 20.0
	interpolateStepM = 10.0
)

// InterpolateRoute returns a denser copy of the route for map rendering.
// Gaps longer than 20 m get floor(d/10)-1 synthetic points at equal linear
// fractions of latitude, longitude, and timestamp; speed and altitude are
// carried from the preceding point. Original points are preserved in order.
// The result is never persisted.
func InterpolateRoute(points []RoutePoint) []RoutePoint {
	if len(points) < 2 {
		return points
	}

	out := make([]RoutePoint, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		out = append(out, a)

		d := geo.HaversineM(a.Lat, a.Lng, b.Lat, b.Lng)
		if d <= interpolateGapM {
			continue
		}

		n := int(math.Floor(d/interpolateStepM)) - 1
		span := b.RecordedAt.Sub(a.RecordedAt)
		for j := 1; j <= n; j++ {
			f := float64(j) / float64(n+1)
			out = append(out, RoutePoint{
				Lat:        a.Lat + (b.Lat-a.Lat)*f,
				Lng:        a.Lng + (b.Lng-a.Lng)*f,
				RecordedAt: a.RecordedAt.Add(time.Duration(f * float64(span))),
				SpeedMps:   a.SpeedMps,
				AltitudeM:  a.AltitudeM,
			})
		}
	}
	out = append(out, points[len(points)-1])
	return out
}
