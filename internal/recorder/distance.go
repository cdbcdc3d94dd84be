package recorder

import "backend-drivelog/internal/shared/geo"

// distanceAccumulator keeps the running traveled distance of the active
// trip. Distance is added once, at acceptance time, and is never recomputed
// when smoothing later removes points: the live figure reflects raw
// acceptance history, not the cosmetically smoothed path.
type distanceAccumulator struct {
	meters float64
}

func (a *distanceAccumulator) reset() {
	a.meters = 0
}

func (a *distanceAccumulator) add(from, to RoutePoint) {
	a.meters += geo.HaversineM(from.Lat, from.Lng, to.Lat, to.Lng)
}

func (a *distanceAccumulator) Meters() float64 {
	return a.meters
}

func (a *distanceAccumulator) Miles() float64 {
	return geo.MetersToMiles(a.meters)
}

func (a *distanceAccumulator) Kilometers() float64 {
	return geo.MetersToKilometers(a.meters)
}
