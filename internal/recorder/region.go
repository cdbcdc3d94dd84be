package recorder

const (
	regionPadding  = 1.2
	minSpanDegrees = 0.001
)

// RouteRegion computes the padded bounding box of a route for map display.
// Spans are floored at 0.001 degrees so near-stationary trips still render
// a usable region. Returns false for an empty route.
func RouteRegion(points []RoutePoint) (Region, bool) {
	if len(points) == 0 {
		return Region{}, false
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
	}

	latSpan := (maxLat - minLat) * regionPadding
	if latSpan < minSpanDegrees {
		latSpan = minSpanDegrees
	}
	lngSpan := (maxLng - minLng) * regionPadding
	if lngSpan < minSpanDegrees {
		lngSpan = minSpanDegrees
	}

	return Region{
		CenterLat: (minLat + maxLat) / 2,
		CenterLng: (minLng + maxLng) / 2,
		LatSpan:   latSpan,
		LngSpan:   lngSpan,
	}, true
}
