package recorder

import (
	"testing"
	"time"
)

func TestInterpolateNoOpBelowGap(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	points := []RoutePoint{
		pointAt(0, 0, t0),
		pointAt(0, 0.00017986, t0.Add(3*time.Second)), // ~20.0 m
	}

	out := InterpolateRoute(points)
	if len(out) != 2 {
		t.Fatalf("expected no synthetic points, got %d", len(out))
	}
}

func TestInterpolateInsertsAboveGap(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	points := []RoutePoint{
		pointAt(0, 0, t0),
		pointAt(0, 0.000189, t0.Add(3*time.Second)), // ~21.0 m
	}

	out := InterpolateRoute(points)
	if len(out) != 3 {
		t.Fatalf("expected 1 synthetic point, got %d total", len(out))
	}
	if out[0] != points[0] || out[2] != points[1] {
		t.Fatalf("original points must be preserved")
	}
	mid := out[1]
	if mid.Lng <= 0 || mid.Lng >= 0.000189 {
		t.Fatalf("synthetic point out of range: %v", mid.Lng)
	}
	if !mid.RecordedAt.After(t0) || !mid.RecordedAt.Before(t0.Add(3*time.Second)) {
		t.Fatalf("synthetic timestamp out of range")
	}
}

func TestInterpolateLongGapCount(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	points := []RoutePoint{
		pointAt(0, 0, t0),
		pointAt(0, 0.00094434, t0.Add(10*time.Second)), // ~105 m
	}

	out := InterpolateRoute(points)
	// floor(105/10)-1 synthetic points plus the two originals
	if len(out) != 11 {
		t.Fatalf("expected 9 synthetic points, got %d total", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Lng <= out[i-1].Lng {
			t.Fatalf("points out of order at %d", i)
		}
	}
}

func TestInterpolateCarriesSpeedAndAltitude(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	speed := 11.0
	alt := 240.0
	points := []RoutePoint{
		{Lat: 0, Lng: 0, RecordedAt: t0, SpeedMps: &speed, AltitudeM: &alt},
		pointAt(0, 0.000189, t0.Add(3*time.Second)),
	}

	out := InterpolateRoute(points)
	if len(out) != 3 {
		t.Fatalf("expected 1 synthetic point")
	}
	if out[1].SpeedMps != &speed || out[1].AltitudeM != &alt {
		t.Fatalf("synthetic point should carry preceding speed and altitude")
	}
}

func TestInterpolateDegenerateInputs(t *testing.T) {
	if out := InterpolateRoute(nil); out != nil {
		t.Fatalf("nil route should pass through")
	}
	one := []RoutePoint{pointAt(0, 0, time.Now())}
	if out := InterpolateRoute(one); len(out) != 1 {
		t.Fatalf("single point should pass through")
	}
}
