package recorder

import (
	"time"

	"backend-drivelog/internal/shared/geo"
)

const (
	// Fixes with worse horizontal accuracy are dropped outright.
	maxAccuracyM = 10.0

	// A fix must move at least this far, or this long must have passed,
	// before it becomes a new route point.
	minPointGapM   = 5.0
	minPointGapDur = 2 * time.Second
)

// acceptFix decides whether a raw fix becomes a route point. The first fix
// of a trip is accepted unconditionally; after that a fix must either have
// moved far enough or enough time must have elapsed, which keeps point
// density bounded while the vehicle idles.
func acceptFix(last *RoutePoint, fix Fix) bool {
	if fix.AccuracyM > maxAccuracyM {
		return false
	}
	if last == nil {
		return true
	}

	d := geo.HaversineM(last.Lat, last.Lng, fix.Lat, fix.Lng)
	elapsed := fix.RecordedAt.Sub(last.RecordedAt)
	if elapsed < 0 {
		// Out-of-order timestamp from the platform; treat as no time passed.
		elapsed = 0
	}
	return d >= minPointGapM || elapsed >= minPointGapDur
}
