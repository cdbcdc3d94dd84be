package recorder

import "backend-drivelog/internal/shared/geo"

const (
	// An interior point further than this from the midpoint of its
	// neighbors is treated as a multipath glitch.
	outlierThresholdM = 50.0

	// When the pass would drop more than this share of the route, the
	// route is probably a genuinely winding road, not noise.
	minRetainedRatio = 0.8

	smootherMinPoints = 3
)

// smoothRoute removes interior points whose position deviates implausibly
// from the arithmetic midpoint of their neighbors (a flat-plane
// approximation, fine at this scale). The first and last points always
// survive. If fewer than 80% of the points would remain, the original list
// is returned untouched. Single pass, no iteration.
func smoothRoute(points []RoutePoint) []RoutePoint {
	if len(points) < smootherMinPoints {
		return points
	}

	kept := make([]RoutePoint, 0, len(points))
	kept = append(kept, points[0])
	for i := 1; i < len(points)-1; i++ {
		midLat := (points[i-1].Lat + points[i+1].Lat) / 2
		midLng := (points[i-1].Lng + points[i+1].Lng) / 2
		if geo.HaversineM(points[i].Lat, points[i].Lng, midLat, midLng) > outlierThresholdM {
			continue
		}
		kept = append(kept, points[i])
	}
	kept = append(kept, points[len(points)-1])

	if float64(len(kept)) < minRetainedRatio*float64(len(points)) {
		return points
	}
	return kept
}
